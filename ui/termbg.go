package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// SetTerminalBackground emits OSC 11 to set the terminal's default background
// so unstyled cells around the floating bar match the theme. Returns a
// function that restores the terminal's own default via OSC 111.
func SetTerminalBackground(c lipgloss.Color) func() {
	return setTermBg(os.Stdout, string(c))
}

func setTermBg(w io.Writer, hexColor string) func() {
	if hexColor == "" {
		return func() {}
	}
	fmt.Fprintf(w, "\033]11;%s\033\\", hexColor)

	return func() {
		fmt.Fprint(w, "\033]111\033\\")
	}
}
