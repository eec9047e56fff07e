package seiscube

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/seiscube/axis"
	"github.com/hupe1980/seiscube/grid"
)

// Subvolume returns the samples of a rectilinear sub-box addressed in
// physical coordinates, shaped (inlines, crosslines, samples).
//
// Each range is validated against its axis before anything is read; one bad
// range fails the whole call. The Reader is asked for the unit-step bounding
// box of the request and the per-axis steps are applied to the decoded box
// in memory. A step therefore reduces the size of the result but not the
// amount of data read and decompressed.
//
// A request that selects nothing on some axis (start after stop) returns an
// empty cube without calling the Reader.
func (v *Volume) Subvolume(ctx context.Context, il, xl, z axis.Range) (*grid.Cube, error) {
	start := time.Now()
	request := fmt.Sprintf("[%s, %s, %s]", il, xl, z)

	out, box, err := v.subvolume(ctx, il, xl, z)

	var decoded, returned int
	if err == nil {
		decoded, returned = box.Cells(), out.Len()
	}
	v.opts.metricsCollector.RecordSubvolume(decoded, returned, time.Since(start), err)
	v.logger.LogSubvolume(ctx, request, box.String(), decoded, returned, err)

	return out, err
}

func (v *Volume) subvolume(ctx context.Context, il, xl, z axis.Range) (*grid.Cube, axis.Box, error) {
	if v.closed.Load() {
		return nil, axis.Box{}, ErrClosed
	}

	box, err := v.frame.Translate(il, xl, z)
	if err != nil {
		return nil, axis.Box{}, err
	}

	if box.Empty() {
		shape := box.Shape()
		return grid.NewCube(shape[0], shape[1], shape[2]), box, nil
	}

	bytes := int64(box.Cells()) * 4
	release, err := v.opts.resources.Reserve(ctx, bytes)
	if err != nil {
		return nil, box, fmt.Errorf("subvolume %s: %w", box, err)
	}
	defer release()

	dense, err := v.reader.ReadSubvolume(ctx,
		box.Inline.Start, box.Inline.Stop,
		box.Crossline.Start, box.Crossline.Stop,
		box.Sample.Start, box.Sample.Stop,
	)
	if err != nil {
		return nil, box, fmt.Errorf("read subvolume %s: %w", box, err)
	}
	if dense == nil || dense.Shape() != box.Bounds() {
		return nil, box, fmt.Errorf("read subvolume %s: %w: got %v, want %v",
			box, ErrShapeMismatch, cubeShape(dense), box.Bounds())
	}

	return dense.Subsample(box.Inline.Step, box.Crossline.Step, box.Sample.Step), box, nil
}

func cubeShape(c *grid.Cube) any {
	if c == nil {
		return nil
	}
	return c.Shape()
}
