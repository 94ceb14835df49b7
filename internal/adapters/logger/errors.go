package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it.
type messager interface {
	Message() string
}

type metadataCarrier interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain prepared for display.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens an error tree into display entries.
// zerr wrappers without a message only carry metadata, which is attached to the
// next entry. Joined errors contribute their branches in order.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	var walk func(error)
	walk = func(e error) {
		for e != nil {
			if joined, ok := e.(interface{ Unwrap() []error }); ok {
				for _, branch := range joined.Unwrap() {
					walk(branch)
				}
				return
			}

			m, ok := e.(messager)
			if !ok {
				entries = append(entries, ErrorEntry{Message: e.Error(), Metadata: merge(nil, pending)})
				pending = nil
				return
			}

			var meta map[string]any
			if c, ok := e.(metadataCarrier); ok {
				meta = c.Metadata()
			}

			if m.Message() == "" {
				pending = merge(pending, meta)
			} else {
				entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: merge(meta, pending)})
				pending = nil
			}
			e = errors.Unwrap(e)
		}
	}
	walk(err)

	return entries
}

// withoutLocation drops the metadata the console handler prints as a location line.
func withoutLocation(entries []ErrorEntry) []ErrorEntry {
	out := make([]ErrorEntry, len(entries))
	for i, e := range entries {
		out[i] = ErrorEntry{Message: e.Message}
		for k, v := range e.Metadata {
			if slices.Contains(locationKeys, k) {
				continue
			}
			if out[i].Metadata == nil {
				out[i].Metadata = make(map[string]any, len(e.Metadata))
			}
			out[i].Metadata[k] = v
		}
	}
	return out
}

func merge(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// formatErrorEntries renders entries as
//
//	Error: <first>
//	       key: value
//
//	  Caused by:
//	    → <next>
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var indent string
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			indent = "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+msgLines[0])
			indent = "      "
		}

		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
