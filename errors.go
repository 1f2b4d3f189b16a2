package warp

import "errors"

// Common errors for transform operations.
var (
	// ErrInvalidScale is returned when a scale factor is zero, negative,
	// or not finite. The resampling geometry divides by scale-derived
	// deltas and inverts the transform matrix, so degenerate scales must
	// be rejected up front instead of producing garbage output.
	ErrInvalidScale = errors.New("warp: invalid scale factor")

	// ErrInvalidDimensions is returned when a raster width or height is
	// non-positive.
	ErrInvalidDimensions = errors.New("warp: invalid dimensions")

	// ErrSingularMatrix is returned when the transform matrix cannot be
	// inverted. With validated scale factors this cannot happen for
	// rotation+scale transforms; it is still checked rather than assumed.
	ErrSingularMatrix = errors.New("warp: singular transform matrix")

	// ErrNilRaster is returned when a nil Mask or Pixmap is passed to a
	// transform function.
	ErrNilRaster = errors.New("warp: nil source raster")
)
