package poh

// EventKind discriminates the three cases of Event: Tick, Claim, and
// Transaction. Go has no native sum type, so Event is represented the way
// the teacher represents its own tagged records (Record/TailState/Anchor in
// karasz-securelog are plain structs with only the relevant fields
// populated per call site) — a single struct carrying a Kind tag plus the
// union of all variant fields, with the unused fields left at their zero
// value for whichever Kind is not in play.
type EventKind uint8

const (
	// Tick carries no payload; it witnesses elapsed hashing work only.
	Tick EventKind = iota
	// Claim is a self-signed assertion by Key over Data.
	Claim
	// Transaction is a signed assertion by From that Data is directed to To.
	Transaction
)

// String returns a human-readable name for k.
func (k EventKind) String() string {
	switch k {
	case Tick:
		return "Tick"
	case Claim:
		return "Claim"
	case Transaction:
		return "Transaction"
	default:
		return "Unknown"
	}
}

// Event is the payload committed at an Entry: a Tick, a Claim, or a
// Transaction, generic over a payload type T bound by Encodable (see
// encoding.go). Only the fields relevant to Kind are meaningful; the
// package never reads the others.
type Event[T Encodable] struct {
	Kind EventKind

	// Claim fields.
	Key PublicKey

	// Transaction fields.
	From PublicKey
	To   PublicKey

	// Claim and Transaction share these.
	Data T
	Sig  Signature
}

// NewTickEvent returns the no-payload Tick event.
func NewTickEvent[T Encodable]() Event[T] {
	return Event[T]{Kind: Tick}
}

// NewClaimEvent returns a Claim event asserting data under key, signed sig.
// It performs no validation or signing itself; use SignPayload to produce
// sig.
func NewClaimEvent[T Encodable](key PublicKey, data T, sig Signature) Event[T] {
	return Event[T]{Kind: Claim, Key: key, Data: data, Sig: sig}
}

// NewTransactionEvent returns a Transaction event asserting that data is
// directed from from to to, signed sig. It performs no validation or
// signing itself; use SignTransfer to produce sig.
func NewTransactionEvent[T Encodable](from, to PublicKey, data T, sig Signature) Event[T] {
	return Event[T]{Kind: Transaction, From: from, To: to, Data: data, Sig: sig}
}

// VerifyEvent reports whether event carries a valid signature for its Kind.
// Tick always verifies; Claim and Transaction check the Ed25519 signature
// against the canonical encoding of the asserted data (binding the
// destination key into the message for Transaction, see SignTransfer).
func VerifyEvent[T Encodable](event Event[T]) bool {
	switch event.Kind {
	case Tick:
		return true
	case Claim:
		return VerifySig(event.Key, encode(event.Data), event.Sig)
	case Transaction:
		return VerifySig(event.From, encodeTransfer(event.Data, event.To), event.Sig)
	default:
		return false
	}
}

// Fold mixes event into the chain hash at base, per the per-variant rule
// that binds event ordering into the hash chain:
//
//	Tick        -> base (identity; a run of ticks is pure hash iteration)
//	Claim       -> ExtendAndHash(base, 2, sig)
//	Transaction -> ExtendAndHash(base, 3, sig)
//
// Only the signature is folded in, never the payload: an Ed25519 signature
// is deterministic and already commits to the entire signed message, so
// committing it is sufficient. The tag bytes 2 and 3 domain-separate the
// two signed variants so a signature valid for one kind can never be
// replayed as the other.
func Fold[T Encodable](base Digest, event Event[T]) Digest {
	switch event.Kind {
	case Claim:
		return ExtendAndHash(base, 2, event.Sig[:])
	case Transaction:
		return ExtendAndHash(base, 3, event.Sig[:])
	default:
		return base
	}
}
