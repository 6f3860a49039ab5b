// Package terminal reads the size of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Size falls back to 80x24 when stdout is not a terminal.
func Size() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// ListSize is how many list rows fit on screen next to the page chrome.
func ListSize(chrome int) int {
	_, h := Size()
	if n := h - chrome; n > 3 {
		return n
	}
	return 3
}
