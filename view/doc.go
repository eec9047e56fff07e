// Package view provides read-only ordered maps over decoded volume records.
//
// A View pairs an ordered key sequence with a decode function and exposes
// mapping and sequence access: Len, Get, At, Slice, Contains, Keys, Values
// and Items. The inline, crossline, z-slice, header and trace accessors of a
// volume are all instances of View that differ only in keys and decoder.
//
// Records are decoded on every access; a View never caches them. Slices and
// Values decode every selected record before returning.
//
// Views identify the volume they read from by storage ID rather than by
// content. Two handles opened on the same path share a storage ID.
package view
