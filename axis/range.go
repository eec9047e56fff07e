package axis

import (
	"fmt"
	"strconv"
)

// Range is a half-open (start, stop, step) request with optional fields.
//
// The zero value selects everything with the native step.
type Range struct {
	start, stop, step          int
	hasStart, hasStop, hasStep bool
}

// All returns a Range with every field unset.
func All() Range { return Range{} }

// Slice returns a Range with all three fields set.
func Slice(start, stop, step int) Range {
	return Range{start: start, stop: stop, step: step, hasStart: true, hasStop: true, hasStep: true}
}

// Span returns a Range with start and stop set and the step unset.
func Span(start, stop int) Range {
	return Range{start: start, stop: stop, hasStart: true, hasStop: true}
}

// From returns a copy of r with start set to v.
func (r Range) From(v int) Range {
	r.start, r.hasStart = v, true
	return r
}

// To returns a copy of r with the exclusive stop set to v.
func (r Range) To(v int) Range {
	r.stop, r.hasStop = v, true
	return r
}

// By returns a copy of r with step set to v.
func (r Range) By(v int) Range {
	r.step, r.hasStep = v, true
	return r
}

// Start returns the start and whether it is set.
func (r Range) Start() (int, bool) { return r.start, r.hasStart }

// Stop returns the stop and whether it is set.
func (r Range) Stop() (int, bool) { return r.stop, r.hasStop }

// Step returns the step and whether it is set.
func (r Range) Step() (int, bool) { return r.step, r.hasStep }

// String formats r in slice notation, e.g. "100:106:4" or "::".
func (r Range) String() string {
	part := func(v int, ok bool) string {
		if !ok {
			return ""
		}
		return strconv.Itoa(v)
	}
	return part(r.start, r.hasStart) + ":" + part(r.stop, r.hasStop) + ":" + part(r.step, r.hasStep)
}

// Indices resolves r as a positional slice over a sequence of length n.
//
// Negative start and stop count from the end, out-of-bounds values are
// clamped and a negative step walks backwards. A zero step is rejected.
func (r Range) Indices(n int) (start, stop, step int, err error) {
	step = 1
	if r.hasStep {
		step = r.step
	}
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("%w: slice step cannot be zero", ErrInvalidStep)
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(v int) int {
		if v < 0 {
			v += n
			if v < lower {
				return lower
			}
			return v
		}
		if v > upper {
			return upper
		}
		return v
	}

	switch {
	case r.hasStart:
		start = clamp(r.start)
	case step < 0:
		start = upper
	default:
		start = lower
	}

	switch {
	case r.hasStop:
		stop = clamp(r.stop)
	case step < 0:
		stop = lower
	default:
		stop = upper
	}

	return start, stop, step, nil
}

// Positions returns the positions selected by r over a sequence of length n.
func (r Range) Positions(n int) ([]int, error) {
	start, stop, step, err := r.Indices(n)
	if err != nil {
		return nil, err
	}
	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}
