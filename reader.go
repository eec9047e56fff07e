package seiscube

import (
	"context"

	"github.com/hupe1980/seiscube/grid"
)

// Geometry describes the regular grid of a volume as reported by its Reader.
type Geometry struct {
	// Inlines holds the inline numbers in storage order.
	Inlines []int
	// Crosslines holds the crossline numbers in storage order.
	Crosslines []int
	// Samples holds the sample depths or times in storage order.
	Samples []float64
	// TraceCount is the number of traces in the volume.
	TraceCount int
}

// InlineCount returns the number of inlines.
func (g Geometry) InlineCount() int { return len(g.Inlines) }

// CrosslineCount returns the number of crosslines.
func (g Geometry) CrosslineCount() int { return len(g.Crosslines) }

// SampleCount returns the number of samples per trace.
func (g Geometry) SampleCount() int { return len(g.Samples) }

// Reader decodes data from an opened compressed volume.
//
// All indices are zero-based storage positions. Ranges are half-open with
// unit step. Implementations own file access, decompression and any caching.
// A Volume calls a Reader from whichever goroutines call the Volume; a
// Reader that is not safe for concurrent use must not be shared across
// goroutines.
type Reader interface {
	// StorageID identifies the volume, typically its file path.
	StorageID() string

	// Geometry returns the volume geometry. It is read once by Open.
	Geometry() Geometry

	// ReadSubvolume decodes the box [ilStart, ilStop) x [xlStart, xlStop) x [zStart, zStop).
	// The returned cube has shape (ilStop-ilStart, xlStop-xlStart, zStop-zStart).
	ReadSubvolume(ctx context.Context, ilStart, ilStop, xlStart, xlStop, zStart, zStop int) (*grid.Cube, error)

	// ReadInline decodes one inline as a (crosslines, samples) panel.
	ReadInline(ctx context.Context, index int) (*grid.Panel, error)

	// ReadCrossline decodes one crossline as an (inlines, samples) panel.
	ReadCrossline(ctx context.Context, index int) (*grid.Panel, error)

	// ReadZSlice decodes one sample slice as an (inlines, crosslines) panel.
	ReadZSlice(ctx context.Context, index int) (*grid.Panel, error)

	// ReadTraceHeader decodes the header of one trace.
	ReadTraceHeader(ctx context.Context, index int) (TraceHeader, error)

	// ReadTrace decodes the samples of one trace.
	ReadTrace(ctx context.Context, index int) ([]float32, error)
}
