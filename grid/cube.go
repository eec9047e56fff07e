package grid

import (
	"errors"
	"fmt"
	"slices"
)

// ErrShapeMismatch is returned when data does not match the declared shape.
var ErrShapeMismatch = errors.New("shape mismatch")

// Cube is a dense three-dimensional array of samples.
type Cube struct {
	shape [3]int
	data  []float32
}

// NewCube allocates a zeroed cube.
func NewCube(ni, nx, nz int) *Cube {
	if ni < 0 || nx < 0 || nz < 0 {
		panic(fmt.Sprintf("grid: negative cube shape (%d, %d, %d)", ni, nx, nz))
	}
	return &Cube{
		shape: [3]int{ni, nx, nz},
		data:  make([]float32, ni*nx*nz),
	}
}

// CubeFrom wraps data without copying. len(data) must equal ni*nx*nz.
func CubeFrom(ni, nx, nz int, data []float32) (*Cube, error) {
	if ni < 0 || nx < 0 || nz < 0 || len(data) != ni*nx*nz {
		return nil, fmt.Errorf("%w: %d values for cube (%d, %d, %d)", ErrShapeMismatch, len(data), ni, nx, nz)
	}
	return &Cube{shape: [3]int{ni, nx, nz}, data: data}, nil
}

// Shape returns (inlines, crosslines, samples).
func (c *Cube) Shape() [3]int { return c.shape }

// Len returns the total number of samples.
func (c *Cube) Len() int { return len(c.data) }

// SizeBytes returns the memory held by the samples.
func (c *Cube) SizeBytes() int64 { return int64(len(c.data)) * 4 }

// Data returns the backing slice in row-major order.
func (c *Cube) Data() []float32 { return c.data }

func (c *Cube) offset(i, j, k int) int {
	return (i*c.shape[1]+j)*c.shape[2] + k
}

// At returns the sample at (i, j, k).
func (c *Cube) At(i, j, k int) float32 { return c.data[c.offset(i, j, k)] }

// Set stores v at (i, j, k).
func (c *Cube) Set(i, j, k int, v float32) { c.data[c.offset(i, j, k)] = v }

// Trace returns the samples at (i, j). The slice aliases the cube.
func (c *Cube) Trace(i, j int) []float32 {
	off := c.offset(i, j, 0)
	return c.data[off : off+c.shape[2] : off+c.shape[2]]
}

// Subsample keeps every si-th inline, sx-th crossline and sz-th sample,
// starting at the first of each. Steps must be >= 1.
//
// When all steps are 1 the receiver itself is returned.
func (c *Cube) Subsample(si, sx, sz int) *Cube {
	if si < 1 || sx < 1 || sz < 1 {
		panic(fmt.Sprintf("grid: invalid subsample steps (%d, %d, %d)", si, sx, sz))
	}
	if si == 1 && sx == 1 && sz == 1 {
		return c
	}

	out := NewCube(ceilDiv(c.shape[0], si), ceilDiv(c.shape[1], sx), ceilDiv(c.shape[2], sz))
	n := 0
	for i := 0; i < c.shape[0]; i += si {
		for j := 0; j < c.shape[1]; j += sx {
			tr := c.Trace(i, j)
			if sz == 1 {
				n += copy(out.data[n:], tr)
				continue
			}
			for k := 0; k < len(tr); k += sz {
				out.data[n] = tr[k]
				n++
			}
		}
	}
	return out
}

// Equal reports whether both cubes have the same shape and samples.
func (c *Cube) Equal(o *Cube) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.shape == o.shape && slices.Equal(c.data, o.data)
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
