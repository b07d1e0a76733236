package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ConfigureColor turns styling off when f is not a terminal
func ConfigureColor(f *os.File) {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
	pterm.DisableColor()
}
