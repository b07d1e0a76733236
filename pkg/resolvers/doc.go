// Package resolvers provides the built-in content sources: local files and
// http/https URLs. Each constructor returns a types.ResolveFunc suitable for
// registering under a pattern in the bundler's resolver registry.
package resolvers
