// Package linear provides a text renderer that summarizes plot requests instead of
// drawing them.
package linear

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/josebatistam/Astroinformatics-II/internal/ui/output"
	"github.com/josebatistam/Astroinformatics-II/internal/ui/style"
	"github.com/muesli/termenv"
	"go.trai.ch/zerr"
)

// Renderer implements ports.Renderer and ports.Flusher.
// Blocks are buffered per request and written in name order on Flush, so the
// output does not depend on the order in which concurrent renders finish.
type Renderer struct {
	out *termenv.Output

	mu     sync.Mutex
	blocks map[string]string
}

// NewRenderer creates a new Renderer writing to w. A nil w writes to stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		out:    output.New(w),
		blocks: make(map[string]string),
	}
}

// Render formats a summary of req.
func (r *Renderer) Render(ctx context.Context, req domain.PlotRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var lines []string
	switch q := req.(type) {
	case domain.SingleSeries:
		proj := "rectangular"
		if q.Projection == domain.Hammer {
			proj = "hammer"
		}
		lines = append(lines,
			r.header(q.Stem, q.Kind().String()+", "+proj),
			"    "+q.Title,
			"    "+panelLine(q.Panel.Axes, q.Panel.Series),
		)
	case domain.DualSeries:
		lines = append(lines,
			r.header(q.Stem, q.Kind().String()),
			"    "+q.Title,
			"    "+panelLine(q.Left.Axes, q.Left.Series),
			"    "+panelLine(q.Right.Axes, q.Right.Series),
		)
	case domain.QuadSeries:
		lines = append(lines,
			r.header(q.Stem, q.Kind().String()),
			"    "+q.Title,
			"    "+panelLine(q.Left.Axes, q.Left.Primary, q.Left.Secondary),
			"    "+panelLine(q.Right.Axes, q.Right.Primary, q.Right.Secondary),
		)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownPlotKind, "summary renderer"), "request", fmt.Sprintf("%T", req))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks[req.Name()] = strings.Join(lines, "\n") + "\n"
	return nil
}

// Flush writes the buffered blocks in name order and clears the buffer.
func (r *Renderer) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range slices.Sorted(maps.Keys(r.blocks)) {
		if _, err := r.out.WriteString(r.blocks[name]); err != nil {
			return zerr.Wrap(err, "failed to write summary")
		}
	}
	clear(r.blocks)
	return nil
}

func (r *Renderer) header(name, detail string) string {
	icon := r.out.String(style.Check).Foreground(r.out.Color(string(style.Green)))
	title := r.out.String(name).Bold()
	return fmt.Sprintf("%s %s (%s)", icon, title, detail)
}

func panelLine(axes domain.Axes, series ...domain.Series) string {
	parts := make([]string, 0, len(series))
	for _, s := range series {
		parts = append(parts, fmt.Sprintf("%s: %d points", s.Label, s.Len()))
	}
	line := strings.Join(parts, ", ")
	if axes.Title != "" {
		line = axes.Title + "  " + line
	}
	return line
}
