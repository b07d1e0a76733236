package config

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/bundlr/pkg/errors"
	"github.com/arthur-debert/bundlr/pkg/types"
)

// Config is the decoded bundlr configuration
type Config struct {
	Defaults Defaults `koanf:"defaults"`
	HTTP     HTTP     `koanf:"http"`
	Bundles  []Bundle `koanf:"bundles"`

	// Source is the project file that was loaded, if any
	Source string `koanf:"-"`

	raw map[string]interface{}
}

// Defaults are request options applied to every bundle
type Defaults struct {
	SrcPath  string `koanf:"src_path"`
	Compress bool   `koanf:"compress"`
	Strict   bool   `koanf:"strict"`
	Mangle   bool   `koanf:"mangle"`
}

// HTTP configures the remote source resolver
type HTTP struct {
	Timeout time.Duration `koanf:"timeout"`
	Retries int           `koanf:"retries"`
}

// Bundle is a named bundle definition. Nil option pointers inherit Defaults.
type Bundle struct {
	Name        string   `koanf:"name"`
	Kind        string   `koanf:"kind"`
	Files       []string `koanf:"files"`
	Destination string   `koanf:"destination"`
	SrcPath     string   `koanf:"src_path"`
	Compress    *bool    `koanf:"compress"`
	Strict      *bool    `koanf:"strict"`
	Mangle      *bool    `koanf:"mangle"`
}

// Raw returns the merged key/value tree the config was decoded from
func (c *Config) Raw() map[string]interface{} {
	return c.raw
}

// Request builds a request for sources using the configured defaults
func (c *Config) Request(sources []string) *types.Request {
	return &types.Request{
		Sources:  append([]string(nil), sources...),
		BasePath: c.Defaults.SrcPath,
		Compress: c.Defaults.Compress,
		Strict:   c.Defaults.Strict,
		Mangle:   c.Defaults.Mangle,
	}
}

// FindBundle returns the bundle with the given name
func (c *Config) FindBundle(name string) (Bundle, error) {
	for _, b := range c.Bundles {
		if b.Name == name {
			return b, nil
		}
	}
	return Bundle{}, errors.Newf(errors.ErrNotFound, "bundle %q is not defined", name).
		WithDetail("bundle", name)
}

// BundleRequest builds the kind and request for a named bundle definition.
// A relative bundle src_path is taken relative to the default src_path.
func (c *Config) BundleRequest(b Bundle) (types.Kind, *types.Request, error) {
	kind, err := types.ParseKind(b.Kind)
	if err != nil {
		return 0, nil, errors.Wrapf(err, errors.ErrInvalidInput, "bundle %q", b.Name)
	}

	req := c.Request(b.Files)
	req.Destination = b.Destination
	if b.SrcPath != "" {
		if filepath.IsAbs(b.SrcPath) || c.Defaults.SrcPath == "" {
			req.BasePath = b.SrcPath
		} else {
			req.BasePath = filepath.Join(c.Defaults.SrcPath, b.SrcPath)
		}
	}
	if b.Compress != nil {
		req.Compress = *b.Compress
	}
	if b.Strict != nil {
		req.Strict = *b.Strict
	}
	if b.Mangle != nil {
		req.Mangle = *b.Mangle
	}
	return kind, req, nil
}

// Validate checks bundle definitions
func (c *Config) Validate() error {
	if c.HTTP.Timeout < 0 {
		return errors.New(errors.ErrConfigParse, "http.timeout cannot be negative")
	}
	if c.HTTP.Retries < 0 {
		return errors.New(errors.ErrConfigParse, "http.retries cannot be negative")
	}

	seen := make(map[string]bool, len(c.Bundles))
	for i, b := range c.Bundles {
		if b.Name == "" {
			return errors.Newf(errors.ErrConfigParse, "bundle %d has no name", i)
		}
		if seen[b.Name] {
			return errors.Newf(errors.ErrConfigParse, "bundle %q is defined twice", b.Name)
		}
		seen[b.Name] = true

		if _, err := types.ParseKind(b.Kind); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "bundle %q", b.Name)
		}
		if len(b.Files) == 0 {
			return errors.Newf(errors.ErrConfigParse, "bundle %q has no files", b.Name)
		}
	}
	return nil
}
