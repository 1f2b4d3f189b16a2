package warp

import "runtime"

// Option configures a transform operation.
// Use functional options to customize resampling behavior.
//
// Example:
//
//	// Default: serial resampling, no progress reporting
//	out, err := warp.TransformMask(mask, 2, 2, 0.25)
//
//	// Parallel resampling across all cores with a progress callback
//	out, err := warp.TransformMask(mask, 2, 2, 0.25,
//	    warp.WithParallelism(0),
//	    warp.WithProgress(warp.ProgressFunc(func(f float64) { fmt.Println(f) })),
//	)
type Option func(*transformOptions)

// transformOptions holds optional configuration for a transform.
type transformOptions struct {
	workers  int
	progress Progress
}

// defaultOptions returns the default transform options.
func defaultOptions() transformOptions {
	return transformOptions{
		workers:  1,
		progress: nopProgress{},
	}
}

// WithParallelism splits the destination rows across n goroutines.
// If n is 0 or negative, GOMAXPROCS is used. The parallel walk derives
// each row's start position directly from the row index, so the output is
// byte-identical to the serial walk regardless of n.
func WithParallelism(n int) Option {
	return func(o *transformOptions) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithProgress attaches a progress sink to the transform.
// Pass nil to restore the default (no reporting).
func WithProgress(p Progress) Option {
	return func(o *transformOptions) {
		if p == nil {
			p = nopProgress{}
		}
		o.progress = p
	}
}
