package axis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame() Frame {
	return Frame{
		Inline:    MustNew(Inline, []int{100, 102, 104}),
		Crossline: MustNew(Crossline, []int{10, 12}),
		Sample:    MustNew(Samples, []int{0, 4, 8}),
	}
}

func TestTranslate(t *testing.T) {
	a := MustNew(Inline, []int{100, 102, 104})

	tests := []struct {
		name string
		r    Range
		want IndexRange
	}{
		{"Unset", All(), IndexRange{0, 3, 1}},
		{"StopAtExtent", All().To(106), IndexRange{0, 3, 1}},
		{"StopAtLastExcludesIt", All().To(104), IndexRange{0, 2, 1}},
		{"Start", All().From(102), IndexRange{1, 3, 1}},
		{"Step", Slice(100, 106, 4), IndexRange{0, 3, 2}},
		{"LargeStep", All().By(200), IndexRange{0, 3, 100}},
		{"StartAfterStop", Span(104, 102), IndexRange{2, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Translate(tt.r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_RoundTrip(t *testing.T) {
	a, err := Arange(Crossline, 1000, 5, 40)
	require.NoError(t, err)

	for i, v := range a.Values() {
		got, err := a.Translate(All().From(v))
		require.NoError(t, err)
		assert.Equal(t, i, got.Start)
		assert.Equal(t, v, a.Value(got.Start))
	}
}

func TestTranslate_Steps(t *testing.T) {
	a, err := Arange(Samples, 0, 4, 25)
	require.NoError(t, err)

	for step := -9; step <= 40; step++ {
		got, err := a.Translate(All().By(step))
		if step > 0 && step%4 == 0 {
			require.NoError(t, err, "step %d", step)
			assert.Equal(t, step/4, got.Step)
			continue
		}
		require.ErrorIs(t, err, ErrInvalidStep, "step %d", step)
	}
}

func TestTranslate_Errors(t *testing.T) {
	a := MustNew(Inline, []int{100, 102, 104})

	tests := []struct {
		name  string
		r     Range
		field Field
		value int
		is    error
	}{
		{"StartBelowOrigin", All().From(98), FieldStart, 98, ErrOutOfRange},
		{"StartAtExtent", All().From(106), FieldStart, 106, ErrOutOfRange},
		{"StopAtOrigin", All().To(100), FieldStop, 100, ErrOutOfRange},
		{"StopPastExtent", All().To(108), FieldStop, 108, ErrOutOfRange},
		{"StartMisaligned", All().From(101), FieldStart, 101, ErrOutOfRange},
		{"StopMisaligned", All().To(103), FieldStop, 103, ErrOutOfRange},
		{"StepNotMultiple", All().By(3), FieldStep, 3, ErrInvalidStep},
		{"StepZero", All().By(0), FieldStep, 0, ErrInvalidStep},
		{"StepNegative", All().By(-2), FieldStep, -2, ErrInvalidStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Translate(tt.r)
			require.ErrorIs(t, err, tt.is)

			var re *RangeError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, "Inline", re.Axis)
			assert.Equal(t, tt.field, re.Field)
			assert.Equal(t, tt.value, re.Value)
			assert.Equal(t, "Inline 100:106:2", re.Axes)
		})
	}
}

func TestFrame_Translate(t *testing.T) {
	f := testFrame()
	assert.Equal(t, "Inline 100:106:2, Crossline 10:14:2, Samples 0:12:4", f.String())

	t.Run("Example", func(t *testing.T) {
		b, err := f.Translate(Slice(100, 106, 4), All().From(10), All())
		require.NoError(t, err)

		assert.Equal(t, IndexRange{0, 3, 2}, b.Inline)
		assert.Equal(t, IndexRange{0, 2, 1}, b.Crossline)
		assert.Equal(t, IndexRange{0, 3, 1}, b.Sample)
		assert.Equal(t, [3]int{3, 2, 3}, b.Bounds())
		assert.Equal(t, [3]int{2, 2, 3}, b.Shape())
		assert.Equal(t, 18, b.Cells())
		assert.True(t, b.Strided())
		assert.False(t, b.Empty())
	})

	t.Run("ErrorDescribesAllAxes", func(t *testing.T) {
		_, err := f.Translate(All().From(98), All(), All())
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.Equal(t,
			"Inline start 98 out of range. Axes are Inline 100:106:2, Crossline 10:14:2, Samples 0:12:4",
			err.Error())
	})

	t.Run("SampleStep", func(t *testing.T) {
		_, err := f.Translate(All(), All(), All().By(6))
		require.ErrorIs(t, err, ErrInvalidStep)
		assert.Contains(t, err.Error(), "Samples step 6 invalid")
		assert.Contains(t, err.Error(), "Inline 100:106:2")
	})

	t.Run("Empty", func(t *testing.T) {
		b, err := f.Translate(Span(104, 102), All(), All())
		require.NoError(t, err)
		assert.True(t, b.Empty())
		assert.Equal(t, [3]int{0, 2, 3}, b.Shape())
	})
}

func TestIndexRange_Len(t *testing.T) {
	tests := []struct {
		r    IndexRange
		want int
	}{
		{IndexRange{0, 3, 1}, 3},
		{IndexRange{0, 3, 2}, 2},
		{IndexRange{1, 10, 3}, 3},
		{IndexRange{0, 3, 100}, 1},
		{IndexRange{2, 2, 1}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.Len(), tt.r.String())
	}
}
