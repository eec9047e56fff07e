package axis

import (
	"fmt"
	"slices"
)

// Common axis names.
const (
	Inline    = "Inline"
	Crossline = "Crossline"
	Samples   = "Samples"
)

// Axis is an ordered arithmetic sequence of physical coordinates.
//
// An Axis is immutable after New and safe for concurrent use.
type Axis struct {
	name   string
	values []int
	index  map[int]int
}

// New builds an axis from its coordinate values.
//
// values must hold at least two elements with a constant positive stride.
func New(name string, values []int) (*Axis, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: %s needs at least 2 values, got %d", ErrInvalidAxis, name, len(values))
	}
	stride := values[1] - values[0]
	if stride <= 0 {
		return nil, fmt.Errorf("%w: %s stride %d is not positive", ErrInvalidAxis, name, stride)
	}

	index := make(map[int]int, len(values))
	for i, v := range values {
		if i > 0 && v-values[i-1] != stride {
			return nil, fmt.Errorf("%w: %s is irregular at position %d (%d after %d, stride %d)",
				ErrInvalidAxis, name, i, v, values[i-1], stride)
		}
		index[v] = i
	}

	return &Axis{
		name:   name,
		values: slices.Clone(values),
		index:  index,
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixed geometries.
func MustNew(name string, values []int) *Axis {
	a, err := New(name, values)
	if err != nil {
		panic(err)
	}
	return a
}

// Arange builds an axis of n values starting at origin.
func Arange(name string, origin, stride, n int) (*Axis, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %s length %d is negative", ErrInvalidAxis, name, n)
	}
	values := make([]int, n)
	for i := range values {
		values[i] = origin + i*stride
	}
	return New(name, values)
}

// Name returns the axis name.
func (a *Axis) Name() string { return a.name }

// Len returns the number of coordinates.
func (a *Axis) Len() int { return len(a.values) }

// Origin returns the first coordinate.
func (a *Axis) Origin() int { return a.values[0] }

// Stride returns the spacing between consecutive coordinates.
func (a *Axis) Stride() int { return a.values[1] - a.values[0] }

// Last returns the last coordinate.
func (a *Axis) Last() int { return a.values[len(a.values)-1] }

// Extent returns the one-past-last coordinate.
func (a *Axis) Extent() int { return a.Last() + a.Stride() }

// Values returns a copy of the coordinates.
func (a *Axis) Values() []int { return slices.Clone(a.values) }

// Value returns the coordinate at position i.
func (a *Axis) Value(i int) int { return a.values[i] }

// Index returns the position of coordinate v.
func (a *Axis) Index(v int) (int, bool) {
	i, ok := a.index[v]
	return i, ok
}

// String formats the axis as "Name origin:extent:stride".
func (a *Axis) String() string {
	return fmt.Sprintf("%s %d:%d:%d", a.name, a.Origin(), a.Extent(), a.Stride())
}
