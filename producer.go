package poh

// NextHash iterates Hash on anchor exactly n times (n == 0 yields anchor
// unchanged), then folds in event. This is the single rule both the
// producer and the verifier must agree on; every other producer operation
// is defined in terms of it.
func NextHash[T Encodable](anchor Digest, n uint64, event Event[T]) Digest {
	end := anchor
	for i := uint64(0); i < n; i++ {
		end = Hash(end[:])
	}
	return Fold(end, event)
}

// NextEntry returns a new entry extending anchor by n hash iterations plus
// event. It does not mutate anchor; see NextEntryAdvancing for the
// streaming variant.
func NextEntry[T Encodable](anchor Digest, n uint64, event Event[T]) Entry[T] {
	return Entry[T]{
		NumHashes: n,
		EndHash:   NextHash(anchor, n, event),
		Event:     event,
	}
}

// NextEntryAdvancing is the primitive for streaming production: it builds
// the next entry exactly like NextEntry, then overwrites *anchor with the
// new EndHash so the caller's rolling hash advances in place. Like the rest
// of the producer API, it is strictly sequential and holds no interior
// lock; callers producing from multiple goroutines must serialize
// externally.
func NextEntryAdvancing[T Encodable](anchor *Digest, n uint64, event Event[T]) Entry[T] {
	entry := NextEntry(*anchor, n, event)
	*anchor = entry.EndHash
	return entry
}

// NextTick is sugar for NextEntry(anchor, n, Tick).
func NextTick[T Encodable](anchor Digest, n uint64) Entry[T] {
	return NextEntry(anchor, n, NewTickEvent[T]())
}

// CreateEntries folds over events, advancing a running hash from anchor and
// emitting one entry per event, each using the same n. The returned slice
// is a chain rooted at anchor. CreateEntries trusts the caller for event
// authenticity and any signatures already attached to events; it does not
// verify anything.
func CreateEntries[T Encodable](anchor Digest, n uint64, events []Event[T]) []Entry[T] {
	entries := make([]Entry[T], len(events))
	end := anchor
	for i, event := range events {
		entries[i] = NextEntryAdvancing(&end, n, event)
	}
	return entries
}

// CreateTicks is equivalent to CreateEntries with len copies of Tick.
func CreateTicks(anchor Digest, n uint64, length int) []Entry[Digest] {
	events := make([]Event[Digest], length)
	for i := range events {
		events[i] = NewTickEvent[Digest]()
	}
	return CreateEntries(anchor, n, events)
}
