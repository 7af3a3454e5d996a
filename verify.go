package poh

// VerifySlice is the reference, serial verifier: it reports whether
// entries forms a valid chain rooted at anchor.
//
// anchor is treated as if it were the EndHash of a synthetic predecessor
// entry. For each adjacent (prev, cur) pair in order, VerifySlice checks
// that cur's event carries a valid signature (VerifyEvent) and that
// cur.EndHash matches NextHash(prev.EndHash, cur.NumHashes, cur.Event) —
// the same rule the producer used to build it. A mismatch on either check,
// anywhere in the slice, fails the whole chain. An empty slice is
// vacuously valid.
func VerifySlice[T Encodable](anchor Digest, entries []Entry[T]) bool {
	prev := anchor
	for _, cur := range entries {
		if !VerifyEvent(cur.Event) {
			return false
		}
		if cur.EndHash != NextHash(prev, cur.NumHashes, cur.Event) {
			return false
		}
		prev = cur.EndHash
	}
	return true
}
