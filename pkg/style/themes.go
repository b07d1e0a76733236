package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors switch automatically between light and dark terminals
var (
	AccentColor  = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}

	// per bundle kind
	ScriptColor     = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	StyleSheetColor = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
)
