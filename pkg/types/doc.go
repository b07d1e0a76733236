// Package types defines the core data structures shared by the bundlr
// pipeline: requests, outcomes, bundle kinds and the capability signatures
// (resolvers, transforms, compactors, sinks) that plug into it.
//
// The package has no behavior of its own beyond small helpers so it can be
// imported from every other package without cycles.
package types
