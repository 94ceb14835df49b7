// Package style provides the shared palette and icons used by the terminal
// output and by the plot renderers.
package style

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Ink    = lipgloss.Color("#0B0F19")
	Grid   = lipgloss.Color("#C8CCD4")
)

// Series colors.
var (
	// Bright marks clusters with m10 < 17.0, and is the default series color.
	Bright = lipgloss.Color("#ff8000")
	// Faint marks clusters with m10 >= 17.0.
	Faint = lipgloss.Color("#0080ff")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "•"
)

// RGBA converts a "#rrggbb" lipgloss color into an opaque color.RGBA.
// Malformed values yield opaque black.
func RGBA(c lipgloss.Color) color.RGBA {
	black := color.RGBA{A: 0xff}
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return black
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
