package telemetry

import (
	"context"
	"sync"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Recorder implements sdktrace.SpanProcessor and keeps the duration of every
// ended span as a domain.StageTiming.
type Recorder struct {
	mu      sync.Mutex
	timings []domain.StageTiming
	closed  bool
}

// NewRecorder returns a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnStart is called when a span starts.
func (r *Recorder) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records the span duration.
func (r *Recorder) OnEnd(s sdktrace.ReadOnlySpan) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.timings = append(r.timings, domain.StageTiming{
		Name:     s.Name(),
		Duration: s.EndTime().Sub(s.StartTime()),
		Failed:   s.Status().Code == codes.Error,
	})
}

// Shutdown stops recording.
func (r *Recorder) Shutdown(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// ForceFlush does nothing; timings are recorded synchronously.
func (r *Recorder) ForceFlush(_ context.Context) error {
	return nil
}

// Timings returns a copy of the recorded timings in end order.
func (r *Recorder) Timings() []domain.StageTiming {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.StageTiming, len(r.timings))
	copy(out, r.timings)
	return out
}
