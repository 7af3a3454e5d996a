package poh

import "encoding/binary"

// Encodable is the bound Go generics place on an Event's payload type T: it
// must have a canonical, deterministic byte encoding, the same requirement
// the original's Rust implementation placed on T via serde's Serialize.
//
// Encode must be pure and deterministic: the same value must always
// produce the same bytes, with no version-dependent framing. Both signing
// (SignPayload/SignTransfer) and verification (VerifyEvent) call Encode
// through this package, never through a second, divergent path, so a
// single implementation is always used consistently.
type Encodable interface {
	Encode() []byte
}

// Bytes is an Encodable payload wrapping a raw byte slice verbatim. It is
// the payload type an application reaches for when it already has its own
// serialization and just needs to hand this package a canonical encoding.
type Bytes []byte

// Encode returns b unchanged.
func (b Bytes) Encode() []byte {
	return []byte(b)
}

// Encode returns d's 32 bytes verbatim. Digest is itself a common payload
// type (e.g. a Claim asserting a prior digest, as in the worked examples).
func (d Digest) Encode() []byte {
	out := make([]byte, DigestSize)
	copy(out, d[:])
	return out
}

// DecodeBytes reverses Bytes.Encode.
func DecodeBytes(b []byte) Bytes {
	return Bytes(append([]byte(nil), b...))
}

// DecodeDigest reverses Digest.Encode. It reports false if b is not
// exactly DigestSize bytes.
func DecodeDigest(b []byte) (Digest, bool) {
	if len(b) != DigestSize {
		return Digest{}, false
	}
	var d Digest
	copy(d[:], b)
	return d, true
}

// encode is the canonical signed message for a Claim: encode(data).
func encode[T Encodable](data T) []byte {
	return data.Encode()
}

// encodeTransfer is the canonical signed message for a Transaction:
// encode(data, to). The encoding is fixed-width framing per §9 of
// SPEC_FULL.md: a big-endian uint32 length prefix for the variable-width
// payload (mirroring the teacher's on-disk record framing in
// file_store.go), followed by the fixed-width 32-byte destination key.
func encodeTransfer[T Encodable](data T, to PublicKey) []byte {
	payload := data.Encode()
	buf := make([]byte, 4+len(payload)+PublicKeySize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(payload)))
	copy(buf[4:4+len(payload)], payload)
	copy(buf[4+len(payload):], to[:])
	return buf
}
