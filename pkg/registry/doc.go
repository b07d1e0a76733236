// Package registry provides an ordered, pattern-keyed rule list used to pick
// the handler for a source identifier.
//
// Rules are tried newest first: Register prepends, so a rule registered after
// construction overrides the built-in catch-all for anything it matches while
// everything else still falls through to the catch-all.
//
// Patterns are ECMAScript-style regular expressions and are matched against
// the whole source identifier (unanchored, as a search).
package registry
