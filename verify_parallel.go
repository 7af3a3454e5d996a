package poh

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// errInvalidPair marks a failed (predecessor, entry) check inside
// VerifySliceParallel. Its only meaningful property is "not nil" — see
// VerifySliceParallel's use of errgroup.Group.Wait.
var errInvalidPair = errors.New("poh: invalid entry")

// VerifySliceParallel is semantically identical to VerifySlice — same
// anchor, same entries, same verdict on every input — but checks each
// adjacent pair concurrently instead of folding left to right.
//
// Each (prev, cur) pair is independently checkable given only prev's
// already-committed EndHash (either anchor, for the first entry, or the
// previous entry's own EndHash), exactly as in VerifySlice. The pair
// stream is built the way the original's verify_slice builds it: prepend a
// synthetic Tick(0, anchor) predecessor and zip it against entries,
// yielding len(entries) independent verification tasks with no
// happens-before constraint between them. That independence is what makes
// a work-stealing pool the right tool here — the Go analogue of the
// original's rayon::par_iter.
//
// VerifySliceParallel dispatches onto a bounded errgroup.Group (capped at
// GOMAXPROCS) and cancels the shared context as soon as any pair fails, so
// goroutines not yet started skip their (potentially large, NumHashes-
// iteration) work. This short-circuiting is an optimization, not a
// semantic requirement: the verdict never depends on which failure, if
// any, is observed first.
func VerifySliceParallel[T Encodable](anchor Digest, entries []Entry[T]) bool {
	n := len(entries)
	if n == 0 {
		return true
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(runtime.GOMAXPROCS(0), 1))

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			prev := anchor
			if i > 0 {
				prev = entries[i-1].EndHash
			}
			cur := entries[i]

			if !VerifyEvent(cur.Event) {
				return errInvalidPair
			}
			if cur.EndHash != NextHash(prev, cur.NumHashes, cur.Event) {
				return errInvalidPair
			}
			return nil
		})
	}

	return g.Wait() == nil
}
