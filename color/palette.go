// Package color builds terminal palettes for bee output using
// github.com/fatih/color.
package color

import (
	"os"

	"github.com/fatih/color"
	"github.com/fwojciec/bee"
	"github.com/mattn/go-isatty"
)

// NewPalette returns a colored palette. Headers are bold yellow and keys
// are cyan.
func NewPalette() bee.Palette {
	header := color.New(color.FgYellow, color.Bold)
	key := color.New(color.FgCyan)
	// Force color codes; whether to color at all is decided by PaletteFor.
	header.EnableColor()
	key.EnableColor()
	return bee.Palette{
		Header: func(s string) string { return header.Sprint(s) },
		Key:    func(s string) string { return key.Sprint(s) },
	}
}

// PaletteFor returns a colored palette when out is a terminal and disabled
// is false, and a plain palette otherwise.
func PaletteFor(out *os.File, disabled bool) bee.Palette {
	if disabled || out == nil || !IsTerminal(out) {
		return bee.PlainPalette()
	}
	return NewPalette()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
