// SPDX-License-Identifier: MIT

package poly

import "golang.org/x/sync/errgroup"

// forEachChunk calls fn over [0, n) split into contiguous [lo, hi) chunks.
//
// With one worker, or when n fits into a single chunk, fn(0, n) runs on the
// calling goroutine. Otherwise chunks are scheduled on an errgroup limited to
// o.workers goroutines. Chunks write disjoint output ranges, so no locking is
// needed and the result does not depend on scheduling.
func forEachChunk(n int, o Options, fn func(lo, hi int)) {
	if o.workers <= 1 || n <= o.chunkSize {
		fn(0, n)

		return
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for lo := 0; lo < n; lo += o.chunkSize {
		lo, hi := lo, min(lo+o.chunkSize, n)
		g.Go(func() error {
			fn(lo, hi)

			return nil
		})
	}
	_ = g.Wait() // chunks never fail
}
