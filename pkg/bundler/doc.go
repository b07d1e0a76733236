// Package bundler is the public entry point for building script and style
// bundles.
//
// A Bundler owns two ordered registries keyed by regular expression: one
// mapping source identifiers to resolvers, one mapping them to transforms.
// Built-in rules are registered at construction, so user rules registered
// later are tried first:
//
//	resolvers:  .  (local file)    ^https?://  (HTTP GET)
//	transforms: .  (identity)      \.css$ \.jsx$ \.ts$ \.tsx$ (esbuild)
//
// Script and Style start a run on its own goroutine and return a Run, which
// resolves to exactly one types.Outcome.
package bundler
