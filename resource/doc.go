// Package resource bounds the memory and decode throughput of volume reads.
//
// A bulk subvolume read always decodes the full unit-step bounding box, even
// when the caller asks for a strided subset. The Controller lets a process
// cap how many bounding-box bytes may be resident at once and how many bytes
// per second may be requested from the storage reader.
//
// A nil *Controller is valid and imposes no limits.
package resource
