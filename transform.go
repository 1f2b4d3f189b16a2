package warp

import (
	"fmt"
	"math"
)

// transformMatrix builds the forward transform for a width x height raster:
// rotation by angle (in turns, negated so positive turns rotate the image
// clockwise on a y-down raster) about the raster midpoint, then scaling by
// (scaleX, scaleY) in the unrotated frame.
//
// The midpoint uses integer halving, so a 5 pixel wide raster rotates
// about column 2. This keeps the rotation center on a pixel boundary.
func transformMatrix(width, height int, scaleX, scaleY, angle float64) Matrix {
	centerX := float64(width / 2)
	centerY := float64(height / 2)

	m := Identity()
	m = m.Translate(-centerX, -centerY)
	m = m.Rotate(-2 * math.Pi * angle)
	m = m.Translate(centerX, centerY)
	m = m.Scale(scaleX, scaleY)
	return m
}

// validateTransform checks the preconditions shared by Size,
// TransformMask and TransformPixmap.
func validateTransform(width, height int, scaleX, scaleY float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !(scaleX > 0) || math.IsInf(scaleX, 1) {
		return fmt.Errorf("%w: scaleX=%v", ErrInvalidScale, scaleX)
	}
	if !(scaleY > 0) || math.IsInf(scaleY, 1) {
		return fmt.Errorf("%w: scaleY=%v", ErrInvalidScale, scaleY)
	}
	return nil
}

// Size returns the dimensions of the raster that transforming a
// width x height source by (scaleX, scaleY, angle) would produce, without
// performing the resample. angle is in turns.
//
// Callers use this to pre-size UI or storage before committing to the
// full transform; it is guaranteed to agree with the dimensions of the
// raster returned by TransformMask and TransformPixmap.
func Size(width, height int, scaleX, scaleY, angle float64) (int, int, error) {
	if err := validateTransform(width, height, scaleX, scaleY); err != nil {
		return 0, 0, err
	}

	m := transformMatrix(width, height, scaleX, scaleY, angle)
	r := TransformBounds(m, width, height)
	return r.Dx(), r.Dy(), nil
}
