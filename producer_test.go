package poh

import "testing"

func TestEncodingRoundTrip(t *testing.T) {
	b := Bytes("hello, world")
	if got := DecodeBytes(b.Encode()); string(got) != string(b) {
		t.Fatalf("Bytes round trip: got %q, want %q", got, b)
	}

	d := Hash([]byte("hello, world"))
	got, ok := DecodeDigest(d.Encode())
	if !ok {
		t.Fatal("DecodeDigest reported failure on a well-formed digest")
	}
	if got != d {
		t.Fatalf("Digest round trip: got %x, want %x", got, d)
	}

	if _, ok := DecodeDigest([]byte{1, 2, 3}); ok {
		t.Fatal("DecodeDigest accepted a short input")
	}
}

func TestNextTickNumHashes(t *testing.T) {
	var zero Digest
	entry := NextTick[Digest](zero, 1)
	if entry.NumHashes != 1 {
		t.Fatalf("NumHashes = %d, want 1", entry.NumHashes)
	}
}

func TestNextEntryDoesNotMutateAnchor(t *testing.T) {
	var zero Digest
	anchor := zero
	_ = NextEntry[Digest](anchor, 5, NewTickEvent[Digest]())
	if anchor != zero {
		t.Fatal("NextEntry mutated its anchor argument")
	}
}

func TestNextEntryAdvancingMutatesAnchor(t *testing.T) {
	var zero Digest
	anchor := zero
	entry := NextEntryAdvancing[Digest](&anchor, 3, NewTickEvent[Digest]())
	if anchor != entry.EndHash {
		t.Fatal("NextEntryAdvancing did not advance the caller's anchor")
	}
	if anchor == zero {
		t.Fatal("anchor unchanged after advancing past a non-zero hash count")
	}
}

func TestCreateEntriesChainsFromAnchor(t *testing.T) {
	var zero Digest
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	e0 := NewClaimEvent(PubkeyOf(kp), zero, SignPayload(zero, kp))
	one := Hash(zero[:])
	e1 := NewClaimEvent(PubkeyOf(kp), one, SignPayload(one, kp))

	entries := CreateEntries(zero, 0, []Event[Digest]{e0, e1})
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].EndHash != NextHash(zero, 0, e0) {
		t.Fatal("first entry not rooted at anchor")
	}
	if entries[1].EndHash != NextHash(entries[0].EndHash, 0, e1) {
		t.Fatal("second entry not chained from the first")
	}
}

func TestCreateTicksLength(t *testing.T) {
	var zero Digest
	entries := CreateTicks(zero, 0, 8)
	if len(entries) != 8 {
		t.Fatalf("len(entries) = %d, want 8", len(entries))
	}
	for i, e := range entries {
		if e.Event.Kind != Tick {
			t.Fatalf("entry %d: Kind = %v, want Tick", i, e.Event.Kind)
		}
	}
}
