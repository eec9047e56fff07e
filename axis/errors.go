package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a start or stop lies outside an axis.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidStep is returned when a step is not a positive multiple of the axis stride.
	ErrInvalidStep = errors.New("invalid step")

	// ErrInvalidAxis is returned when coordinate values do not form an arithmetic axis.
	ErrInvalidAxis = errors.New("invalid axis")
)

// Field names a component of a Range.
type Field string

const (
	FieldStart Field = "start"
	FieldStop  Field = "stop"
	FieldStep  Field = "step"
)

// RangeError describes a rejected Range.
//
// It matches ErrOutOfRange or ErrInvalidStep via errors.Is.
type RangeError struct {
	// Axis is the axis name, e.g. "Inline".
	Axis string
	// Field is the offending component.
	Field Field
	// Value is the offending physical value.
	Value int
	// Axes describes the geometry the request was checked against.
	Axes string

	misaligned bool
	cause      error
}

func (e *RangeError) Error() string {
	var what string
	switch {
	case e.cause == ErrInvalidStep:
		what = "invalid"
	case e.misaligned:
		what = "not on axis"
	default:
		what = "out of range"
	}
	return fmt.Sprintf("%s %s %d %s. Axes are %s", e.Axis, e.Field, e.Value, what, e.Axes)
}

func (e *RangeError) Unwrap() error { return e.cause }

func outOfRange(a *Axis, f Field, v int) *RangeError {
	return &RangeError{Axis: a.name, Field: f, Value: v, Axes: a.String(), cause: ErrOutOfRange}
}

func misaligned(a *Axis, f Field, v int) *RangeError {
	return &RangeError{Axis: a.name, Field: f, Value: v, Axes: a.String(), misaligned: true, cause: ErrOutOfRange}
}

func invalidStep(a *Axis, v int) *RangeError {
	return &RangeError{Axis: a.name, Field: FieldStep, Value: v, Axes: a.String(), cause: ErrInvalidStep}
}
