package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/josebatistam/Astroinformatics-II/internal/adapters/logger"
	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("prepared 4 clusters")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("cache unreadable, rebuilding")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name: "source unavailable",
			err: zerr.With(
				errors.Join(domain.ErrSourceUnavailable, errors.New("open data/abellN1989.dat: no such file or directory")),
				"path", "data/abellN1989.dat",
			),
			goldenName: "error_source_unavailable",
		},
		{
			name: "malformed row",
			err: zerr.With(
				zerr.With(zerr.Wrap(domain.ErrMalformedRow, "too few fields"), "fields", 5),
				"row", 2,
			),
			goldenName: "error_malformed_row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "hello", record["msg"])
}

func TestLogger_JSONError(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.Wrap(domain.ErrCacheCorrupt, "checksum mismatch"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Contains(t, record, "error")
}

func TestLogger_SetJSONPreservesOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_Stage(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Stage(domain.StageTiming{Name: "persist", Duration: 1234567 * time.Nanosecond})
	lg.Stage(domain.StageTiming{Name: "load", Duration: 2 * time.Millisecond, Failed: true})

	assert.Equal(t, "persist    1.235ms\nload       2ms (failed)\n", buf.String())
}

func TestLogger_StageJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Stage(domain.StageTiming{Name: "render", Duration: time.Millisecond, Failed: true})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "render", record[logger.KeyStage])
	assert.Equal(t, true, record[logger.KeyFailed])
	assert.InDelta(t, float64(time.Millisecond), record[logger.KeyDuration], 0)
}

func TestLogger_ErrorLocation(t *testing.T) {
	err := zerr.With(zerr.With(zerr.With(
		zerr.Wrap(domain.ErrMalformedRow, "redshift must be greater than -1"),
		"column", "z"), "row", 2), "path", "bad.txt")

	t.Run("console", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(err)

		out := buf.String()
		assert.True(t, strings.HasSuffix(out, "\n  at bad.txt (row 2, column z)\n"), out)
		assert.NotContains(t, out, "row: 2")
	})

	t.Run("json", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetJSON(true)
		lg.Error(err)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "bad.txt", record["path"])
		assert.InDelta(t, 2, record["row"], 0)
		assert.Equal(t, "z", record["column"])
	})
}
