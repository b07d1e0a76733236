// Package transforms provides the built-in content transforms: the identity
// catch-all and esbuild-backed dialect compilers (TypeScript, TSX, JSX).
package transforms
