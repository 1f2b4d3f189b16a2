package warp

import (
	"image"
	"math"
)

// TransformBounds returns the integer-aligned axis-aligned bounding box of
// a width x height rectangle under the forward transform m.
//
// The four corners (0,0), (w,0), (0,h) and (w,h) are transformed; the box
// origin is the floor of the minimum corner coordinate and the box extent
// is the ceiling of the maximum minus the origin. The result therefore
// contains every transformed source pixel, possibly with an empty border
// for rotations that are not multiples of a quarter turn.
func TransformBounds(m Matrix, width, height int) image.Rectangle {
	w := float64(width)
	h := float64(height)

	x1, y1 := m.TransformPoint(0, 0)
	x2, y2 := m.TransformPoint(w, 0)
	x3, y3 := m.TransformPoint(0, h)
	x4, y4 := m.TransformPoint(w, h)

	x := int(math.Floor(min(min(x1, x2), min(x3, x4))))
	y := int(math.Floor(min(min(y1, y2), min(y3, y4))))
	maxX := int(math.Ceil(max(max(x1, x2), max(x3, x4))))
	maxY := int(math.Ceil(max(max(y1, y2), max(y3, y4))))

	return image.Rect(x, y, maxX, maxY)
}
