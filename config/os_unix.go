//go:build !windows

package config

import (
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"
)

// CleanFileName drops path separators and control characters from the name
// and refuses names made only of dots.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if r == os.PathSeparator || r == os.PathListSeparator || unicode.IsControl(r) {
			return -1
		}
		return r
	}, in)
	out = strings.TrimLeft(out, ".")
	if out == "" {
		return "_bad_file_name_"
	}
	return out
}

// EnableColorOutput reports whether stream is a terminal and NO_COLOR is not
// set.
func EnableColorOutput(stream *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(stream.Fd()))
}
