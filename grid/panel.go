package grid

import (
	"fmt"
	"slices"
)

// Panel is a dense two-dimensional array of samples.
type Panel struct {
	shape [2]int
	data  []float32
}

// NewPanel allocates a zeroed panel.
func NewPanel(rows, cols int) *Panel {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("grid: negative panel shape (%d, %d)", rows, cols))
	}
	return &Panel{shape: [2]int{rows, cols}, data: make([]float32, rows*cols)}
}

// PanelFrom wraps data without copying. len(data) must equal rows*cols.
func PanelFrom(rows, cols int, data []float32) (*Panel, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for panel (%d, %d)", ErrShapeMismatch, len(data), rows, cols)
	}
	return &Panel{shape: [2]int{rows, cols}, data: data}, nil
}

// Shape returns (rows, cols).
func (p *Panel) Shape() [2]int { return p.shape }

// Len returns the total number of samples.
func (p *Panel) Len() int { return len(p.data) }

// SizeBytes returns the memory held by the samples.
func (p *Panel) SizeBytes() int64 { return int64(len(p.data)) * 4 }

// Data returns the backing slice in row-major order.
func (p *Panel) Data() []float32 { return p.data }

// At returns the sample at (r, c).
func (p *Panel) At(r, c int) float32 { return p.data[r*p.shape[1]+c] }

// Set stores v at (r, c).
func (p *Panel) Set(r, c int, v float32) { p.data[r*p.shape[1]+c] = v }

// Row returns row r. The slice aliases the panel.
func (p *Panel) Row(r int) []float32 {
	off := r * p.shape[1]
	return p.data[off : off+p.shape[1] : off+p.shape[1]]
}

// Equal reports whether both panels have the same shape and samples.
func (p *Panel) Equal(o *Panel) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.shape == o.shape && slices.Equal(p.data, o.data)
}
