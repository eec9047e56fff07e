// Package axis translates physical coordinate requests into storage indices.
//
// A seismic cube is addressed along three arithmetic axes: inline,
// crossline and sample. Each Axis records its ordered coordinate values and
// derives origin, stride and extent (the one-past-last coordinate) from them.
//
// # Physical ranges
//
// A Range is a half-open (start, stop, step) request in physical units where
// every field may be left unset:
//
//	axis.All()                  // whole axis, native stride
//	axis.Slice(1200, 1400, 4)   // inlines 1200, 1204, ... 1396
//	axis.All().From(1200)       // 1200 to the end
//	axis.All().To(ext).By(8)    // stop at the extent, every 8 units
//
// Translate validates a Range against an Axis and returns the zero-based
// IndexRange understood by the storage reader. A stop equal to the extent
// selects through the last value; the literal last value as stop excludes it.
//
// # Errors
//
// Validation failures are *RangeError values matching ErrOutOfRange or
// ErrInvalidStep with errors.Is. Frame.Translate fills in the description of
// all three axes so a bad request can be diagnosed from the message alone.
package axis
