// Package seiscube provides geometry-aware random access into a block
// compressed seismic cube.
//
// A cube is addressed by inline, crossline and sample coordinates. seiscube
// translates physical coordinates ("inline 1200 to 1400 step 4") into the
// zero-based indices understood by a storage Reader, validates requests
// against the volume geometry, and exposes array and mapping views that never
// decode more than the requested extent.
//
// Decoding itself is delegated to a Reader supplied by the caller: seiscube
// does not open containers, decompress blocks or cache decoded data.
//
// # Quick Start
//
//	vol, err := seiscube.Open(reader)
//	if err != nil { ... }
//	defer vol.Close()
//
//	// Every second inline from 1200 up to (not including) 1400,
//	// all crosslines, samples 0 through 2000 ms.
//	cube, err := vol.Subvolume(ctx,
//	    axis.Slice(1200, 1400, 4),
//	    axis.All(),
//	    axis.Span(0, 2004))
//
// # Keyed Views
//
// Five ordered, read-only views share one protocol (see package view):
//
//	panel, _ := vol.Inlines().Get(ctx, 1200)   // one inline section
//	panel, _ = vol.Crosslines().Get(ctx, 850)  // one crossline section
//	panel, _ = vol.ZSlices().Get(ctx, 1500.0)  // one depth/time slice
//	hdr, _ := vol.Headers().Get(ctx, 0)        // first trace header
//	trace, _ := vol.Traces().Get(ctx, 0)       // first trace
//
//	panels, _ := vol.Inlines().Slice(ctx, axis.All().By(10)) // every 10th inline
//
// # Strided Reads
//
// Subvolume always asks the Reader for the unit-step bounding box of the
// request and applies steps afterwards in memory. Compressed blocks must be
// decoded in full regardless of stride, so a larger step shrinks the
// returned array but not the read or decompression cost. A
// resource.Controller (WithResourceController) can bound the memory held by
// bounding boxes.
//
// # Errors
//
// Invalid requests fail before any read is issued with ErrOutOfRange,
// ErrInvalidStep or ErrKeyNotFound. Messages embed the description of all
// three axes, e.g. "Inline start 98 out of range. Axes are Inline 100:106:2,
// Crossline 10:14:2, Samples 0:12:4".
//
// # Concurrency
//
// A Volume holds only immutable geometry after Open. Calls may run
// concurrently if and only if the Reader supports concurrent reads; seiscube
// takes no locks around Reader calls.
package seiscube
