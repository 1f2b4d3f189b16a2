package warp

// Interpolation identifies a resampling filter.
//
// The engine itself always resamples with InterpBilinear; the other
// values exist so callers assembling a downstream image-processing graph
// can name the filter they want applied at later stages.
type Interpolation uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	InterpNearest Interpolation = iota

	// InterpBilinear performs linear interpolation between 4 neighboring
	// pixels. This is the filter used by TransformMask and TransformPixmap.
	InterpBilinear

	// InterpBicubic performs cubic interpolation using a 4x4 pixel
	// neighborhood.
	InterpBicubic
)

// String returns a string representation of the interpolation filter.
func (i Interpolation) String() string {
	switch i {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}
