package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josebatistam/Astroinformatics-II/internal/ui/output"
	"github.com/josebatistam/Astroinformatics-II/internal/ui/style"
	"github.com/muesli/termenv"
)

// Attribute keys the console layout treats specially.
const (
	KeyStage    = "stage"
	KeyDuration = "duration"
	KeyFailed   = "failed"
	KeyPath     = "path"
	KeyLine     = "line"
	KeyRow      = "row"
	KeyColumn   = "column"
)

// locationKeys are rendered together as a single "at" line.
var locationKeys = []string{KeyPath, KeyLine, KeyRow, KeyColumn}

// stageWidth pads stage names so durations line up.
const stageWidth = 10

// ConsoleHandler is a slog.Handler for the terminal.
//
// Records carrying a stage attribute are printed as one row of the timings
// table. Catalog location attributes are folded into an "at path:line (row N,
// column C)" line under the message. Anything else is appended as key=value.
type ConsoleHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
}

// NewConsoleHandler creates a ConsoleHandler writing to w, or to stderr when w is nil.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &ConsoleHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// consoleRecord is a record split into the parts of the console layout.
type consoleRecord struct {
	stage    string
	duration string
	failed   bool
	location map[string]string
	extra    []string
}

func (c *consoleRecord) add(prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if prefix == "" {
		switch a.Key {
		case KeyStage:
			c.stage = a.Value.String()
			return
		case KeyDuration:
			c.duration = a.Value.String()
			return
		case KeyFailed:
			c.failed = a.Value.Kind() == slog.KindBool && a.Value.Bool()
			return
		case KeyPath, KeyLine, KeyRow, KeyColumn:
			if c.location == nil {
				c.location = make(map[string]string, len(locationKeys))
			}
			c.location[a.Key] = a.Value.String()
			return
		}
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			c.add(prefix+a.Key+".", ga)
		}
		return
	}
	c.extra = append(c.extra, prefix+a.Key+"="+a.Value.String())
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var rec consoleRecord
	for _, a := range h.attrs {
		rec.add("", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		rec.add(h.prefix, a)
		return true
	})

	var text string
	color := style.Slate
	if rec.stage != "" {
		text = fmt.Sprintf("%-*s %s", stageWidth, rec.stage, rec.duration)
		if rec.failed {
			text += " (failed)"
			color = style.Red
		}
	} else {
		text = levelMarker(r.Level) + r.Message
		color = levelColor(r.Level)
	}
	if len(rec.extra) > 0 {
		text += " " + strings.Join(rec.extra, " ")
	}

	var b strings.Builder
	b.WriteString(h.out.String(text).Foreground(h.out.Color(string(color))).String())
	b.WriteByte('\n')
	if loc := formatLocation(rec.location); loc != "" {
		b.WriteString(h.out.String("  at " + loc).Faint().String())
		b.WriteByte('\n')
	}

	_, err := h.out.WriteString(b.String())
	return err
}

func levelMarker(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return style.Cross + " "
	case l >= slog.LevelWarn:
		return style.Warning + " "
	}
	return ""
}

func levelColor(l slog.Level) lipgloss.Color {
	switch {
	case l >= slog.LevelError:
		return style.Red
	case l >= slog.LevelWarn:
		return style.Yellow
	}
	return style.Slate
}

// formatLocation renders path:line followed by the row and column in parentheses.
// Parts that are absent are left out.
func formatLocation(loc map[string]string) string {
	if len(loc) == 0 {
		return ""
	}

	head := loc[KeyPath]
	if line, ok := loc[KeyLine]; ok {
		if head != "" {
			head += ":" + line
		} else {
			head = "line " + line
		}
	}

	var detail []string
	if row, ok := loc[KeyRow]; ok {
		detail = append(detail, "row "+row)
	}
	if column, ok := loc[KeyColumn]; ok {
		detail = append(detail, "column "+column)
	}

	switch {
	case len(detail) == 0:
		return head
	case head == "":
		return strings.Join(detail, ", ")
	}
	return head + " (" + strings.Join(detail, ", ") + ")"
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a = slog.Group(strings.TrimSuffix(h.prefix, "."), a)
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}
