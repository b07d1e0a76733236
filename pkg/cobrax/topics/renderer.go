package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for the terminal. format is the topic
// file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as they are stored
type PlainRenderer struct{}

// Render returns content unchanged
func (PlainRenderer) Render(content string, _ string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats and
// rendering failures fall back to the raw content.
type GlamourRenderer struct {
	// Style is a glamour style name or path; empty or "auto" detects it
	Style string
	// Width wraps output at this column; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a renderer that picks its style from the terminal
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render implements Renderer
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" && r.Style != "auto" {
		options = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
