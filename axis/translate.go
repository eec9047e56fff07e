package axis

import (
	"errors"
	"fmt"
)

// IndexRange is a zero-based half-open range in storage-index units.
//
// It always satisfies 0 <= Start <= Stop <= axis length and Step >= 1.
type IndexRange struct {
	Start int
	Stop  int
	Step  int
}

// Span returns Stop - Start, the number of positions decoded for the range.
func (r IndexRange) Span() int { return r.Stop - r.Start }

// Len returns the number of positions selected once Step is applied.
func (r IndexRange) Len() int {
	if r.Stop <= r.Start {
		return 0
	}
	return (r.Stop - r.Start + r.Step - 1) / r.Step
}

func (r IndexRange) String() string {
	return fmt.Sprintf("[%d:%d:%d]", r.Start, r.Stop, r.Step)
}

// Check validates r against a without translating it.
func (a *Axis) Check(r Range) error {
	origin, stride, extent := a.Origin(), a.Stride(), a.Extent()

	if r.hasStart && (r.start < origin || r.start >= extent) {
		return outOfRange(a, FieldStart, r.start)
	}
	if r.hasStop && (r.stop <= origin || r.stop > extent) {
		return outOfRange(a, FieldStop, r.stop)
	}
	if r.hasStep && (r.step <= 0 || r.step%stride != 0) {
		return invalidStep(a, r.step)
	}
	return nil
}

// Translate validates r and converts it to storage indices.
//
// An unset start maps to 0, an unset stop or a stop equal to the extent maps
// to Len(), and an unset step maps to 1. Starts and stops inside the extent
// that do not fall on an axis value are rejected with ErrOutOfRange.
func (a *Axis) Translate(r Range) (IndexRange, error) {
	if err := a.Check(r); err != nil {
		return IndexRange{}, err
	}

	out := IndexRange{Start: 0, Stop: a.Len(), Step: 1}

	if r.hasStart {
		i, ok := a.Index(r.start)
		if !ok {
			return IndexRange{}, misaligned(a, FieldStart, r.start)
		}
		out.Start = i
	}

	if r.hasStop && r.stop != a.Extent() {
		i, ok := a.Index(r.stop)
		if !ok {
			return IndexRange{}, misaligned(a, FieldStop, r.stop)
		}
		out.Stop = i
	}

	if r.hasStep {
		out.Step = r.step / a.Stride()
	}

	// A start past the stop selects nothing.
	if out.Stop < out.Start {
		out.Stop = out.Start
	}

	return out, nil
}

// Frame groups the inline, crossline and sample axes of a volume.
type Frame struct {
	Inline    *Axis
	Crossline *Axis
	Sample    *Axis
}

// String joins the three axis descriptions.
func (f Frame) String() string {
	return f.Inline.String() + ", " + f.Crossline.String() + ", " + f.Sample.String()
}

// Box is a translated inline x crossline x sample request.
type Box struct {
	Inline    IndexRange
	Crossline IndexRange
	Sample    IndexRange
}

// Bounds returns the dimensions of the unit-step bounding box.
func (b Box) Bounds() [3]int {
	return [3]int{b.Inline.Span(), b.Crossline.Span(), b.Sample.Span()}
}

// Shape returns the dimensions after the per-axis steps are applied.
func (b Box) Shape() [3]int {
	return [3]int{b.Inline.Len(), b.Crossline.Len(), b.Sample.Len()}
}

// Cells returns the number of samples in the bounding box.
func (b Box) Cells() int {
	d := b.Bounds()
	return d[0] * d[1] * d[2]
}

// Empty reports whether the box selects no samples.
func (b Box) Empty() bool { return b.Cells() == 0 }

// Strided reports whether any axis has a step other than 1.
func (b Box) Strided() bool {
	return b.Inline.Step != 1 || b.Crossline.Step != 1 || b.Sample.Step != 1
}

func (b Box) String() string {
	return b.Inline.String() + b.Crossline.String() + b.Sample.String()
}

// Translate validates all three requests and converts them to a Box.
//
// Nothing is translated unless all three requests are valid. Errors carry the
// description of the whole frame.
func (f Frame) Translate(il, xl, z Range) (Box, error) {
	var (
		b   Box
		err error
	)
	if b.Inline, err = f.Inline.Translate(il); err != nil {
		return Box{}, f.describe(err)
	}
	if b.Crossline, err = f.Crossline.Translate(xl); err != nil {
		return Box{}, f.describe(err)
	}
	if b.Sample, err = f.Sample.Translate(z); err != nil {
		return Box{}, f.describe(err)
	}
	return b, nil
}

func (f Frame) describe(err error) error {
	var re *RangeError
	if errors.As(err, &re) {
		re.Axes = f.String()
	}
	return err
}
