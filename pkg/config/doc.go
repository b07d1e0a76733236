// Package config handles configuration management for bundlr.
// It supports loading configuration from multiple sources including
// embedded defaults, TOML or YAML project files, environment variables,
// and command-line flags, in that order of precedence (last wins).
package config
