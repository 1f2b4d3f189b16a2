package warp

import (
	"fmt"
	"testing"
)

// BenchmarkTransformMask measures mask resampling across source sizes.
func BenchmarkTransformMask(b *testing.B) {
	benchmarks := []struct {
		name string
		size int
	}{
		{"32px", 32},
		{"128px", 128},
		{"512px", 512},
	}

	for _, bm := range benchmarks {
		src := gradientMask(bm.size, bm.size)

		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := TransformMask(src, 1.3, 0.8, 0.15); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTransformPixmapParallel compares serial and parallel resampling
// of a 3-channel raster.
func BenchmarkTransformPixmapParallel(b *testing.B) {
	src := NewPixmap(512, 512)
	src.Fill(120, 80, 40)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := TransformPixmap(src, 1.5, 1.5, 0.125, WithParallelism(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkIdentityFastPath measures the clone shortcut for the identity
// transform.
func BenchmarkIdentityFastPath(b *testing.B) {
	src := gradientMask(512, 512)

	b.Run("identity", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := TransformMask(src, 1, 1, 0); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("near_identity", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := TransformMask(src, 1.0001, 1, 0); err != nil {
				b.Fatal(err)
			}
		}
	})
}
