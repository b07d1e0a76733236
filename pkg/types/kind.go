package types

import (
	"fmt"
	"strings"
)

// Kind is the output kind of a bundle. It selects the compactor.
type Kind int

const (
	// KindScript bundles JavaScript
	KindScript Kind = iota
	// KindStyle bundles style sheets
	KindStyle
)

// Kinds lists every bundle kind
var Kinds = []Kind{KindScript, KindStyle}

// String returns the short name used in config files and on the command line
func (k Kind) String() string {
	switch k {
	case KindScript:
		return "js"
	case KindStyle:
		return "css"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a config or flag value to a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "js", "script", "javascript":
		return KindScript, nil
	case "css", "style", "stylesheet":
		return KindStyle, nil
	default:
		return 0, fmt.Errorf("unknown bundle kind %q (want js or css)", s)
	}
}
