package seiscube_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/seiscube"
	"github.com/hupe1980/seiscube/axis"
	"github.com/hupe1980/seiscube/grid"
	"github.com/hupe1980/seiscube/resource"
	"github.com/hupe1980/seiscube/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSmall(t *testing.T, opts ...seiscube.Option) (*seiscube.Volume, *testutil.SyntheticReader) {
	t.Helper()
	r := testutil.NewSyntheticReader("small.sgz", []int{100, 102, 104}, []int{10, 12}, []float64{0, 4, 8})
	vol, err := seiscube.Open(r, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = vol.Close() })
	return vol, r
}

func TestSubvolume(t *testing.T) {
	ctx := context.Background()

	t.Run("Example", func(t *testing.T) {
		vol, r := openSmall(t)

		cube, err := vol.Subvolume(ctx, axis.Slice(100, 106, 4), axis.All().From(10), axis.All())
		require.NoError(t, err)
		require.Equal(t, [3]int{2, 2, 3}, cube.Shape())

		// The reader decodes the unit-step bounding box.
		assert.Equal(t, []testutil.SubvolumeCall{{IlStart: 0, IlStop: 3, XlStart: 0, XlStop: 2, ZStart: 0, ZStop: 3}},
			r.SubvolumeCalls())

		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				for k := 0; k < 3; k++ {
					assert.Equal(t, testutil.Value(2*i, j, k), cube.At(i, j, k))
				}
			}
		}
	})

	t.Run("FullExtent", func(t *testing.T) {
		vol, r := openSmall(t)

		cube, err := vol.Subvolume(ctx, axis.All(), axis.All(), axis.All())
		require.NoError(t, err)
		assert.Equal(t, [3]int{3, 2, 3}, cube.Shape())
		assert.True(t, r.Full().Equal(cube))

		byExtent, err := vol.Subvolume(ctx, axis.All().To(106), axis.All().To(14), axis.All().To(12))
		require.NoError(t, err)
		assert.True(t, cube.Equal(byExtent))
	})

	t.Run("LastValueAsStopExcludesIt", func(t *testing.T) {
		vol, _ := openSmall(t)

		cube, err := vol.Subvolume(ctx, axis.All().To(104), axis.All(), axis.All().To(8))
		require.NoError(t, err)
		assert.Equal(t, [3]int{2, 2, 2}, cube.Shape())
	})

	t.Run("Empty", func(t *testing.T) {
		vol, r := openSmall(t)

		cube, err := vol.Subvolume(ctx, axis.Span(104, 102), axis.All(), axis.All())
		require.NoError(t, err)
		assert.Equal(t, [3]int{0, 2, 3}, cube.Shape())
		assert.Zero(t, r.Calls.Subvolume.Load())
	})
}

func TestSubvolume_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		il, xl, z axis.Range
		is        error
		axisName  string
	}{
		{"InlineStartBelowOrigin", axis.All().From(98), axis.All(), axis.All(), seiscube.ErrOutOfRange, "Inline"},
		{"CrosslineStopPastExtent", axis.All(), axis.All().To(16), axis.All(), seiscube.ErrOutOfRange, "Crossline"},
		{"SampleMisaligned", axis.All(), axis.All(), axis.All().From(2), seiscube.ErrOutOfRange, "Samples"},
		{"InlineStep", axis.All().By(3), axis.All(), axis.All(), seiscube.ErrInvalidStep, "Inline"},
		{"SampleStep", axis.All(), axis.All(), axis.All().By(2), seiscube.ErrInvalidStep, "Samples"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vol, r := openSmall(t)

			cube, err := vol.Subvolume(ctx, tt.il, tt.xl, tt.z)
			require.ErrorIs(t, err, tt.is)
			assert.Nil(t, cube)

			var re *axis.RangeError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.axisName, re.Axis)
			assert.Contains(t, err.Error(), "Inline 100:106:2, Crossline 10:14:2, Samples 0:12:4")

			// Validation fails before any read.
			assert.Zero(t, r.Calls.Total())
		})
	}
}

func TestSubvolume_ReaderFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("Propagated", func(t *testing.T) {
		vol, r := openSmall(t)
		boom := errors.New("corrupt block")
		r.FailWith(boom)

		_, err := vol.Subvolume(ctx, axis.All(), axis.All(), axis.All())
		require.ErrorIs(t, err, boom)
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		r := &wrongShapeReader{SyntheticReader: testutil.NewSyntheticReader("bad.sgz",
			[]int{1, 2}, []int{1, 2}, []float64{0, 1})}
		vol, err := seiscube.Open(r)
		require.NoError(t, err)

		_, err = vol.Subvolume(ctx, axis.All(), axis.All(), axis.All())
		require.ErrorIs(t, err, seiscube.ErrShapeMismatch)
	})
}

type wrongShapeReader struct {
	*testutil.SyntheticReader
}

func (w *wrongShapeReader) ReadSubvolume(context.Context, int, int, int, int, int, int) (*grid.Cube, error) {
	return grid.NewCube(1, 1, 1), nil
}

// Random requests against a larger cube must match a post-hoc slice of the full decode.
func TestSubvolume_MatchesReference(t *testing.T) {
	ctx := context.Background()
	r := testutil.NewRegularReader("large.sgz", 1000, 2, 13, 500, 5, 11, 0, 4, 17)
	vol, err := seiscube.Open(r)
	require.NoError(t, err)

	full := r.Full()
	rng := testutil.NewRNG(7)
	fr := vol.Frame()

	pick := func(a *axis.Axis) (axis.Range, [3]int) {
		lo, hi := rng.Span(a.Len())
		step := 1 + rng.Intn(4)
		stop := a.Extent()
		if hi < a.Len() {
			stop = a.Value(hi)
		}
		return axis.Slice(a.Value(lo), stop, step*a.Stride()), [3]int{lo, hi, step}
	}

	for n := 0; n < 200; n++ {
		il, ri := pick(fr.Inline)
		xl, rx := pick(fr.Crossline)
		z, rz := pick(fr.Sample)

		cube, err := vol.Subvolume(ctx, il, xl, z)
		require.NoError(t, err, "%s %s %s", il, xl, z)

		want := [3]int{
			(ri[1] - ri[0] + ri[2] - 1) / ri[2],
			(rx[1] - rx[0] + rx[2] - 1) / rx[2],
			(rz[1] - rz[0] + rz[2] - 1) / rz[2],
		}
		require.Equal(t, want, cube.Shape())

		for i := 0; i < want[0]; i++ {
			for j := 0; j < want[1]; j++ {
				for k := 0; k < want[2]; k++ {
					exp := full.At(ri[0]+i*ri[2], rx[0]+j*rx[2], rz[0]+k*rz[2])
					if exp != cube.At(i, j, k) {
						t.Fatalf("%s %s %s: (%d,%d,%d) = %v, want %v", il, xl, z, i, j, k, cube.At(i, j, k), exp)
					}
				}
			}
		}
	}
}

func TestSubvolume_ResourceController(t *testing.T) {
	ctx := context.Background()

	t.Run("BudgetExceeded", func(t *testing.T) {
		// The full bounding box is 3*2*3 samples = 72 bytes.
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 64})
		vol, r := openSmall(t, seiscube.WithResourceController(rc))

		// A step does not shrink the decoded box.
		_, err := vol.Subvolume(ctx, axis.All().By(4), axis.All(), axis.All())
		require.ErrorIs(t, err, resource.ErrBudgetExceeded)
		assert.Zero(t, r.Calls.Subvolume.Load())

		_, err = vol.Subvolume(ctx, axis.All().To(104), axis.All(), axis.All())
		require.NoError(t, err)
		assert.Equal(t, int64(0), rc.MemoryUsage())
	})
}

func TestSubvolume_Metrics(t *testing.T) {
	ctx := context.Background()
	metrics := &seiscube.BasicMetricsCollector{}
	vol, _ := openSmall(t, seiscube.WithMetricsCollector(metrics))

	_, err := vol.Subvolume(ctx, axis.Slice(100, 106, 4), axis.All(), axis.All())
	require.NoError(t, err)
	_, err = vol.Subvolume(ctx, axis.All().From(98), axis.All(), axis.All())
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.SubvolumeCount)
	assert.Equal(t, int64(1), stats.SubvolumeErrors)
	assert.Equal(t, int64(18), stats.DecodedCells)
	assert.Equal(t, int64(12), stats.ReturnedCells)
	assert.InDelta(t, 1.5, stats.DecodeAmplification(), 1e-9)
}
