package seiscube

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync/atomic"
	"time"

	"github.com/hupe1980/seiscube/axis"
	"github.com/hupe1980/seiscube/grid"
	"github.com/hupe1980/seiscube/view"
)

// traceHeaderBytes is the size of one SEG-Y trace header.
const traceHeaderBytes = 240

// View names reported to loggers and metrics.
const (
	ViewInline    = "inline"
	ViewCrossline = "crossline"
	ViewZSlice    = "zslice"
	ViewHeader    = "header"
	ViewTrace     = "trace"
)

// Volume is an opened seismic cube.
//
// Geometry is read from the Reader once by Open and never changes. A Volume
// does not own decoded data and keeps no state between calls other than
// whether it has been closed.
type Volume struct {
	reader Reader
	geom   Geometry
	frame  axis.Frame
	opts   options
	logger *Logger
	closed atomic.Bool

	inlines    *view.View[int, *grid.Panel]
	crosslines *view.View[int, *grid.Panel]
	zslices    *view.View[float64, *grid.Panel]
	headers    *view.View[int, TraceHeader]
	traces     *view.View[int, []float32]
}

// Open wraps r in a Volume.
//
// The inline and crossline axes must be arithmetic with a positive stride.
// Sample coordinates are truncated to integers for Subvolume requests and
// must also be arithmetic in integer units.
func Open(r Reader, optFns ...Option) (*Volume, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	ctx := context.Background()
	if r == nil {
		err := fmt.Errorf("%w: nil reader", ErrInvalidGeometry)
		opts.logger.LogOpen(ctx, "", "", 0, err)
		return nil, err
	}

	id := r.StorageID()
	v, err := newVolume(r, id, opts)
	if err != nil {
		err = fmt.Errorf("open %s: %w", id, err)
		opts.logger.LogOpen(ctx, id, "", 0, err)
		return nil, err
	}

	opts.logger.LogOpen(ctx, id, v.frame.String(), v.geom.TraceCount, nil)
	return v, nil
}

func newVolume(r Reader, id string, opts options) (*Volume, error) {
	g := r.Geometry()
	g = Geometry{
		Inlines:    slices.Clone(g.Inlines),
		Crosslines: slices.Clone(g.Crosslines),
		Samples:    slices.Clone(g.Samples),
		TraceCount: g.TraceCount,
	}

	if g.TraceCount < 0 {
		return nil, fmt.Errorf("%w: negative trace count %d", ErrInvalidGeometry, g.TraceCount)
	}

	il, err := axis.New(axis.Inline, g.Inlines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}
	xl, err := axis.New(axis.Crossline, g.Crosslines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}
	z, err := axis.New(axis.Samples, truncate(g.Samples))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}

	ilKeys, err := view.NewList(g.Inlines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}
	xlKeys, err := view.NewList(g.Crosslines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}
	zKeys, err := view.NewList(g.Samples)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}

	v := &Volume{
		reader: r,
		geom:   g,
		frame:  axis.Frame{Inline: il, Crossline: xl, Sample: z},
		opts:   opts,
		logger: opts.logger.WithVolume(id),
	}

	ni, nx, ns := g.InlineCount(), g.CrosslineCount(), g.SampleCount()
	observe := view.WithObserver(v.observeView)

	v.inlines = view.New[int, *grid.Panel](ViewInline, id, ilKeys,
		decoder(v, panelBytes(nx, ns), panelReader(r.ReadInline, nx, ns)), observe)
	v.crosslines = view.New[int, *grid.Panel](ViewCrossline, id, xlKeys,
		decoder(v, panelBytes(ni, ns), panelReader(r.ReadCrossline, ni, ns)), observe)
	v.zslices = view.New[float64, *grid.Panel](ViewZSlice, id, zKeys,
		decoder(v, panelBytes(ni, nx), panelReader(r.ReadZSlice, ni, nx)), observe)
	v.headers = view.New[int, TraceHeader](ViewHeader, id, view.Ordinals(g.TraceCount),
		decoder[TraceHeader](v, traceHeaderBytes, r.ReadTraceHeader), observe)
	v.traces = view.New[int, []float32](ViewTrace, id, view.Ordinals(g.TraceCount),
		decoder(v, panelBytes(1, ns), traceReader(r.ReadTrace, ns)), observe)

	return v, nil
}

// StorageID identifies the underlying volume, typically its file path.
//
// Volumes and views opened on the same path report the same ID even when
// they are distinct handles.
func (v *Volume) StorageID() string { return v.reader.StorageID() }

// Geometry returns a copy of the volume geometry.
func (v *Volume) Geometry() Geometry {
	return Geometry{
		Inlines:    slices.Clone(v.geom.Inlines),
		Crosslines: slices.Clone(v.geom.Crosslines),
		Samples:    slices.Clone(v.geom.Samples),
		TraceCount: v.geom.TraceCount,
	}
}

// Frame returns the axes used to translate Subvolume requests.
func (v *Volume) Frame() axis.Frame { return v.frame }

// Axes describes all three axes, e.g. "Inline 100:106:2, Crossline 10:14:2, Samples 0:12:4".
func (v *Volume) Axes() string { return v.frame.String() }

// Inlines returns the view of inline panels keyed by inline number.
func (v *Volume) Inlines() *view.View[int, *grid.Panel] { return v.inlines }

// Crosslines returns the view of crossline panels keyed by crossline number.
func (v *Volume) Crosslines() *view.View[int, *grid.Panel] { return v.crosslines }

// ZSlices returns the view of sample slices keyed by sample depth or time.
func (v *Volume) ZSlices() *view.View[float64, *grid.Panel] { return v.zslices }

// Headers returns the view of trace headers keyed by trace ordinal.
func (v *Volume) Headers() *view.View[int, TraceHeader] { return v.headers }

// Traces returns the view of trace samples keyed by trace ordinal.
func (v *Volume) Traces() *view.View[int, []float32] { return v.traces }

// Close marks the volume closed and closes the Reader if it implements io.Closer.
// Closing twice is a no-op.
func (v *Volume) Close() error {
	if v == nil || !v.closed.CompareAndSwap(false, true) {
		return nil
	}
	var err error
	if c, ok := v.reader.(io.Closer); ok {
		err = c.Close()
	}
	v.logger.LogClose(context.Background(), err)
	return err
}

func (v *Volume) observeView(ctx context.Context, name string, records int, d time.Duration, err error) {
	v.opts.metricsCollector.RecordViewRead(name, records, d, err)
	v.logger.LogViewRead(ctx, name, records, err)
}

// decoder guards read with the closed flag and the read throughput limit.
func decoder[V any](v *Volume, bytes int64, read view.Decoder[V]) view.Decoder[V] {
	return func(ctx context.Context, i int) (V, error) {
		var zero V
		if v.closed.Load() {
			return zero, ErrClosed
		}
		if err := v.opts.resources.AcquireIO(ctx, bytes); err != nil {
			return zero, err
		}
		return read(ctx, i)
	}
}

func panelReader(read func(context.Context, int) (*grid.Panel, error), rows, cols int) view.Decoder[*grid.Panel] {
	return func(ctx context.Context, i int) (*grid.Panel, error) {
		p, err := read(ctx, i)
		if err != nil {
			return nil, err
		}
		if p == nil || p.Shape() != [2]int{rows, cols} {
			return nil, fmt.Errorf("%w: reader returned panel %v, want (%d, %d)", ErrShapeMismatch, shapeOf(p), rows, cols)
		}
		return p, nil
	}
}

func traceReader(read func(context.Context, int) ([]float32, error), ns int) view.Decoder[[]float32] {
	return func(ctx context.Context, i int) ([]float32, error) {
		tr, err := read(ctx, i)
		if err != nil {
			return nil, err
		}
		if len(tr) != ns {
			return nil, fmt.Errorf("%w: reader returned %d samples, want %d", ErrShapeMismatch, len(tr), ns)
		}
		return tr, nil
	}
}

func shapeOf(p *grid.Panel) any {
	if p == nil {
		return nil
	}
	return p.Shape()
}

func panelBytes(rows, cols int) int64 {
	return int64(rows) * int64(cols) * 4
}

// truncate converts sample coordinates to integer units.
func truncate(samples []float64) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = int(s)
	}
	return out
}
