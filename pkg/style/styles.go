// Package style renders bundlr's terminal output with lipgloss and pterm.
package style

import (
	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

var (
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	PathStyle    = lipgloss.NewStyle().Foreground(AccentColor).Italic(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)

	ScriptStyle     = lipgloss.NewStyle().Foreground(ScriptColor).Bold(true)
	StyleSheetStyle = lipgloss.NewStyle().Foreground(StyleSheetColor).Bold(true)
)

// KindStyle returns the style used to label bundles of kind
func KindStyle(kind types.Kind) lipgloss.Style {
	if kind == types.KindStyle {
		return StyleSheetStyle
	}
	return ScriptStyle
}

// RenderError formats err the way the CLI prints fatal errors
func RenderError(err error) string {
	return ErrorStyle.Render("Error: " + err.Error())
}

// indicator returns the check or cross shown in front of a bundle line
func indicator(failed bool) string {
	if failed {
		return ErrorStyle.Render("✗")
	}
	return SuccessStyle.Render("✓")
}
