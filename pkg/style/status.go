package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/pterm/pterm"
)

// Status of a finished bundle
type Status string

const (
	StatusSuccess Status = "success" // Bundle built
	StatusError   Status = "error"   // Bundle failed
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// BundleStatus describes one bundle for the build report
type BundleStatus struct {
	Name        string
	Kind        types.Kind
	Sources     int
	Destination string
	Bytes       int
	Err         error
}

// NewBundleStatus builds a BundleStatus from a run outcome
func NewBundleStatus(name string, kind types.Kind, sources int, out types.Outcome) BundleStatus {
	return BundleStatus{
		Name:        name,
		Kind:        kind,
		Sources:     sources,
		Destination: out.Destination,
		Bytes:       len(out.Code),
		Err:         out.Err,
	}
}

// Status returns the aggregated status
func (b BundleStatus) Status() Status {
	if b.Err != nil {
		return StatusError
	}
	return StatusSuccess
}

// RenderBundleStatus renders a single bundle line
func RenderBundleStatus(b BundleStatus) string {
	mark := indicator(b.Err != nil)
	kind := KindStyle(b.Kind).Render(fmt.Sprintf("%-3s", b.Kind))
	name := StatusStyle(b.Status()).Sprint(b.Name)

	if b.Err != nil {
		return fmt.Sprintf("  %s %s %s: %s", mark, kind, name, b.Err)
	}

	target := MutedStyle.Render("(stdout)")
	if b.Destination != "" {
		target = PathStyle.Render(b.Destination)
	}
	return fmt.Sprintf("  %s %s %s: %d sources, %d bytes → %s", mark, kind, name, b.Sources, b.Bytes, target)
}

// RenderReport renders every bundle followed by a totals line
func RenderReport(bundles []BundleStatus) string {
	var result strings.Builder
	failed := 0

	for _, b := range bundles {
		if b.Err != nil {
			failed++
		}
		result.WriteString(RenderBundleStatus(b) + "\n")
	}

	summary := fmt.Sprintf("%d built, %d failed", len(bundles)-failed, failed)
	if failed > 0 {
		result.WriteString(StatusStyle(StatusError).Sprint(summary))
	} else {
		result.WriteString(StatusStyle(StatusSuccess).Sprint(summary))
	}
	return result.String()
}
