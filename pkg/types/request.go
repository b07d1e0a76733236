package types

// Request is the configuration for one bundling run
type Request struct {
	// Sources are the identifiers to bundle, in output order
	Sources []string

	// BasePath is joined in front of local paths by the file resolver
	BasePath string

	// Destination is where the bundle is persisted; empty keeps it in memory
	Destination string

	// Compress enables the compaction stage
	Compress bool

	// Strict selects aggressive style-sheet compaction
	Strict bool

	// Mangle allows the script compactor to rename identifiers
	Mangle bool
}

// NewRequest returns a Request with the default options:
// compaction on, strict off, mangling on.
func NewRequest(sources ...string) *Request {
	return &Request{
		Sources:  sources,
		Compress: true,
		Mangle:   true,
	}
}

// Clone returns a deep copy so a run never aliases the caller's slice
func (r *Request) Clone() *Request {
	c := *r
	c.Sources = append([]string(nil), r.Sources...)
	return &c
}
