package warp

// Progress receives completion updates during a resampling pass.
//
// The resampler calls Start once with a human-readable label, Update with
// fractions in [0, 1] (including 0.0 before the first row and 1.0 after
// the last), and End exactly once when the pass finishes. In a serial
// transform the fractions are monotonically non-decreasing. Progress does
// not influence the numeric output in any way; it exists so interactive
// callers can drive a progress bar.
//
// Implementations must be safe for calls from the goroutine running the
// transform. When the transform runs with WithParallelism, Update may be
// called from multiple goroutines, and while the completed-row counts
// behind the fractions only grow, delivery order across goroutines is not
// guaranteed: an implementation may observe a smaller fraction after a
// larger one and should keep the maximum it has seen.
type Progress interface {
	// Start signals the beginning of a pass with a descriptive label.
	Start(label string)

	// Update reports the completed fraction of the pass.
	Update(fraction float64)

	// End signals that the pass is complete.
	End()
}

// nopProgress is the default Progress: it discards all updates.
type nopProgress struct{}

func (nopProgress) Start(string)    {}
func (nopProgress) Update(float64)  {}
func (nopProgress) End()            {}

// ProgressFunc adapts a plain function to the Progress interface.
// Start and End are reported as Update(0) and Update(1).
type ProgressFunc func(fraction float64)

// Start implements Progress.
func (f ProgressFunc) Start(string) { f(0) }

// Update implements Progress.
func (f ProgressFunc) Update(fraction float64) { f(fraction) }

// End implements Progress.
func (f ProgressFunc) End() { f(1) }
