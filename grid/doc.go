// Package grid provides dense in-memory sample arrays.
//
// Cube holds an inline x crossline x sample block in row-major order, with
// samples varying fastest. Panel holds a two-dimensional section such as an
// inline, a crossline or a depth slice.
package grid
