// Package warp provides affine raster transforms for brush masks and pixmaps.
//
// # Overview
//
// warp is a Pure Go raster-resampling library for the GoGPU ecosystem.
// Given a single-channel Mask or a three-channel Pixmap and a transform
// described by independent X/Y scale factors and a rotation angle, it
// produces a new raster containing the transformed image. The destination
// is sized from the transformed bounding box so nothing is clipped.
//
// # Quick Start
//
//	import "github.com/gogpu/warp"
//
//	mask := warp.NewMask(64, 64)
//	// ... fill mask ...
//
//	// Rotate a quarter turn, double the size.
//	out, err := warp.TransformMask(mask, 2, 2, 0.25)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Query the output size without resampling.
//	w, h, err := warp.Size(mask.Width(), mask.Height(), 2, 2, 0.25)
//
// # Algorithm
//
// The resampler uses inverse mapping: the destination raster is walked in
// scan-line order while the corresponding position in source space is
// advanced by precomputed per-step deltas. Each destination pixel is the
// bilinear blend of the four source samples surrounding the mapped
// position. All inner-loop arithmetic is fixed-point integer math, so the
// output is deterministic across platforms and there are no float
// operations per pixel. Work scales with the output size, not the input
// size.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation angles are in turns (1.0 = one full revolution)
//
// # Concurrency
//
// Transforms are pure functions over immutable input. Pass
// WithParallelism to split the destination rows across goroutines; the
// result is byte-identical to the serial walk.
package warp

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
