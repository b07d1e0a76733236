package pipeline

import "strings"

// Separator is placed between consecutive items when a bundle is assembled
const Separator = "\n"

// Bundle holds per-item content index-aligned with the source list.
// Its length is fixed at creation; Set only overwrites.
type Bundle struct {
	sources  []string
	contents []string
}

// NewBundle creates an empty bundle for sources
func NewBundle(sources []string) *Bundle {
	return &Bundle{
		sources:  append([]string(nil), sources...),
		contents: make([]string, len(sources)),
	}
}

// Len returns the number of items
func (b *Bundle) Len() int {
	return len(b.sources)
}

// Source returns the identifier of item i
func (b *Bundle) Source(i int) string {
	return b.sources[i]
}

// Content returns the current content of item i
func (b *Bundle) Content(i int) string {
	return b.contents[i]
}

// Set replaces the content of item i
func (b *Bundle) Set(i int, content string) {
	b.contents[i] = content
}

// Contents returns a copy of all item contents in index order
func (b *Bundle) Contents() []string {
	return append([]string(nil), b.contents...)
}

// Assemble joins the contents in index order with Separator
func Assemble(b *Bundle) string {
	return strings.Join(b.contents, Separator)
}
