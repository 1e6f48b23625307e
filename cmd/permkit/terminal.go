package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

func fileDescriptor(v any) (int, bool) {
	f, ok := v.(*os.File)
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

func isTerminal(v any) bool {
	fd, ok := fileDescriptor(v)
	return ok && term.IsTerminal(fd)
}

// terminalWidth returns the column count of w, or 0 when w is not a
// terminal.
func terminalWidth(w io.Writer) int {
	fd, ok := fileDescriptor(w)
	if !ok || !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// newLipgloss returns a renderer bound to w. mode is auto, always or never.
func newLipgloss(w io.Writer, mode string) (*lipgloss.Renderer, error) {
	lg := lipgloss.NewRenderer(w)
	switch mode {
	case "", "auto":
	case "always":
		lg.SetColorProfile(termenv.TrueColor)
	case "never":
		lg.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("unknown color mode %q: want auto, always or never", mode)
	}
	return lg, nil
}
