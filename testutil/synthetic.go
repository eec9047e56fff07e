package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/seiscube"
	"github.com/hupe1980/seiscube/grid"
)

// Value returns the synthetic sample stored at zero-based position (i, j, k).
func Value(i, j, k int) float32 {
	return float32(i*10000 + j*100 + k)
}

// Counters tracks the reads issued against a SyntheticReader.
type Counters struct {
	Subvolume atomic.Int64
	Inline    atomic.Int64
	Crossline atomic.Int64
	ZSlice    atomic.Int64
	Header    atomic.Int64
	Trace     atomic.Int64
}

// Total returns the number of reads of any kind.
func (c *Counters) Total() int64 {
	return c.Subvolume.Load() + c.Inline.Load() + c.Crossline.Load() +
		c.ZSlice.Load() + c.Header.Load() + c.Trace.Load()
}

// SubvolumeCall records the arguments of one ReadSubvolume call.
type SubvolumeCall struct {
	IlStart, IlStop int
	XlStart, XlStop int
	ZStart, ZStop   int
}

// SyntheticReader is an in-memory seiscube.Reader over a generated cube.
// It is safe for concurrent use.
type SyntheticReader struct {
	id   string
	geom seiscube.Geometry

	// Calls counts issued reads.
	Calls Counters

	mu      sync.Mutex
	boxes   []SubvolumeCall
	failErr error
	closed  bool
}

// NewSyntheticReader creates a reader with the given axes. The trace count is
// the product of the inline and crossline counts.
func NewSyntheticReader(id string, inlines, crosslines []int, samples []float64) *SyntheticReader {
	return &SyntheticReader{
		id: id,
		geom: seiscube.Geometry{
			Inlines:    slices.Clone(inlines),
			Crosslines: slices.Clone(crosslines),
			Samples:    slices.Clone(samples),
			TraceCount: len(inlines) * len(crosslines),
		},
	}
}

// NewRegularReader creates a reader with arithmetic axes of the given lengths.
func NewRegularReader(id string, il0, ilStep, ni, xl0, xlStep, nx int, z0, zStep float64, ns int) *SyntheticReader {
	inlines := make([]int, ni)
	for i := range inlines {
		inlines[i] = il0 + i*ilStep
	}
	crosslines := make([]int, nx)
	for i := range crosslines {
		crosslines[i] = xl0 + i*xlStep
	}
	samples := make([]float64, ns)
	for i := range samples {
		samples[i] = z0 + float64(i)*zStep
	}
	return NewSyntheticReader(id, inlines, crosslines, samples)
}

// FailWith makes every subsequent read return err. Pass nil to clear.
func (r *SyntheticReader) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failErr = err
}

// SubvolumeCalls returns the arguments of every ReadSubvolume call so far.
func (r *SyntheticReader) SubvolumeCalls() []SubvolumeCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.boxes)
}

// Closed reports whether Close was called.
func (r *SyntheticReader) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Close implements io.Closer.
func (r *SyntheticReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// StorageID implements seiscube.Reader.
func (r *SyntheticReader) StorageID() string { return r.id }

// Geometry implements seiscube.Reader.
func (r *SyntheticReader) Geometry() seiscube.Geometry { return r.geom }

// Full returns the whole cube.
func (r *SyntheticReader) Full() *grid.Cube {
	ni, nx, ns := r.geom.InlineCount(), r.geom.CrosslineCount(), r.geom.SampleCount()
	return r.build(0, ni, 0, nx, 0, ns)
}

// ReadSubvolume implements seiscube.Reader.
func (r *SyntheticReader) ReadSubvolume(_ context.Context, ilStart, ilStop, xlStart, xlStop, zStart, zStop int) (*grid.Cube, error) {
	r.Calls.Subvolume.Add(1)
	r.mu.Lock()
	r.boxes = append(r.boxes, SubvolumeCall{ilStart, ilStop, xlStart, xlStop, zStart, zStop})
	r.mu.Unlock()

	if err := r.failure(); err != nil {
		return nil, err
	}
	if err := checkSpan("inline", ilStart, ilStop, r.geom.InlineCount()); err != nil {
		return nil, err
	}
	if err := checkSpan("crossline", xlStart, xlStop, r.geom.CrosslineCount()); err != nil {
		return nil, err
	}
	if err := checkSpan("sample", zStart, zStop, r.geom.SampleCount()); err != nil {
		return nil, err
	}
	return r.build(ilStart, ilStop, xlStart, xlStop, zStart, zStop), nil
}

// ReadInline implements seiscube.Reader.
func (r *SyntheticReader) ReadInline(_ context.Context, index int) (*grid.Panel, error) {
	r.Calls.Inline.Add(1)
	if err := r.check("inline", index, r.geom.InlineCount()); err != nil {
		return nil, err
	}
	nx, ns := r.geom.CrosslineCount(), r.geom.SampleCount()
	p := grid.NewPanel(nx, ns)
	for j := 0; j < nx; j++ {
		for k := 0; k < ns; k++ {
			p.Set(j, k, Value(index, j, k))
		}
	}
	return p, nil
}

// ReadCrossline implements seiscube.Reader.
func (r *SyntheticReader) ReadCrossline(_ context.Context, index int) (*grid.Panel, error) {
	r.Calls.Crossline.Add(1)
	if err := r.check("crossline", index, r.geom.CrosslineCount()); err != nil {
		return nil, err
	}
	ni, ns := r.geom.InlineCount(), r.geom.SampleCount()
	p := grid.NewPanel(ni, ns)
	for i := 0; i < ni; i++ {
		for k := 0; k < ns; k++ {
			p.Set(i, k, Value(i, index, k))
		}
	}
	return p, nil
}

// ReadZSlice implements seiscube.Reader.
func (r *SyntheticReader) ReadZSlice(_ context.Context, index int) (*grid.Panel, error) {
	r.Calls.ZSlice.Add(1)
	if err := r.check("sample", index, r.geom.SampleCount()); err != nil {
		return nil, err
	}
	ni, nx := r.geom.InlineCount(), r.geom.CrosslineCount()
	p := grid.NewPanel(ni, nx)
	for i := 0; i < ni; i++ {
		for j := 0; j < nx; j++ {
			p.Set(i, j, Value(i, j, index))
		}
	}
	return p, nil
}

// ReadTraceHeader implements seiscube.Reader.
func (r *SyntheticReader) ReadTraceHeader(_ context.Context, index int) (seiscube.TraceHeader, error) {
	r.Calls.Header.Add(1)
	if err := r.check("trace", index, r.geom.TraceCount); err != nil {
		return nil, err
	}
	nx := r.geom.CrosslineCount()
	i, j := index/nx, index%nx

	h := seiscube.TraceHeader{
		seiscube.HeaderTraceSequenceFile: int32(index + 1),
		seiscube.HeaderInline:            int32(r.geom.Inlines[i]),
		seiscube.HeaderCrossline:         int32(r.geom.Crosslines[j]),
		seiscube.HeaderCDPX:              int32(1000 * r.geom.Inlines[i]),
		seiscube.HeaderCDPY:              int32(1000 * r.geom.Crosslines[j]),
		seiscube.HeaderSampleCount:       int32(r.geom.SampleCount()),
	}
	if len(r.geom.Samples) > 1 {
		h[seiscube.HeaderSampleInterval] = int32(1000 * (r.geom.Samples[1] - r.geom.Samples[0]))
	}
	return h, nil
}

// ReadTrace implements seiscube.Reader.
func (r *SyntheticReader) ReadTrace(_ context.Context, index int) ([]float32, error) {
	r.Calls.Trace.Add(1)
	if err := r.check("trace", index, r.geom.TraceCount); err != nil {
		return nil, err
	}
	nx, ns := r.geom.CrosslineCount(), r.geom.SampleCount()
	i, j := index/nx, index%nx
	tr := make([]float32, ns)
	for k := range tr {
		tr[k] = Value(i, j, k)
	}
	return tr, nil
}

func (r *SyntheticReader) build(ilStart, ilStop, xlStart, xlStop, zStart, zStop int) *grid.Cube {
	c := grid.NewCube(ilStop-ilStart, xlStop-xlStart, zStop-zStart)
	for i := ilStart; i < ilStop; i++ {
		for j := xlStart; j < xlStop; j++ {
			for k := zStart; k < zStop; k++ {
				c.Set(i-ilStart, j-xlStart, k-zStart, Value(i, j, k))
			}
		}
	}
	return c
}

func (r *SyntheticReader) failure() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failErr
}

func (r *SyntheticReader) check(what string, index, n int) error {
	if err := r.failure(); err != nil {
		return err
	}
	if index < 0 || index >= n {
		return fmt.Errorf("synthetic: %s index %d out of [0, %d)", what, index, n)
	}
	return nil
}

func checkSpan(what string, start, stop, n int) error {
	if start < 0 || stop > n || start > stop {
		return fmt.Errorf("synthetic: %s span [%d, %d) out of [0, %d)", what, start, stop, n)
	}
	return nil
}
