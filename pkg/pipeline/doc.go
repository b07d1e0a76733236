// Package pipeline drives a bundling run.
//
// A run is a fixed sequence:
//
//	resolve pass → transform pass → assemble → compact → output
//
// Each pass walks the bundle strictly in index order and awaits every step
// before starting the next one, so bundle order never depends on I/O timing.
// The first failing step aborts the pass and every later stage; the error
// is wrapped once with the pass code and the failing item's index and
// source. No partial bundle is returned and nothing is persisted after a
// failure.
//
// The engine knows nothing about registries: a Pass is a name, an error code
// and a Step. The bundler package builds the resolve and transform passes
// from its registries.
package pipeline
