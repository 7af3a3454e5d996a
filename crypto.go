package poh

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"errors"
)

// DigestSize is the size in bytes of a Digest (SHA-256 output size).
const DigestSize = 32

// PublicKeySize is the size in bytes of a PublicKey.
const PublicKeySize = ed25519.PublicKeySize

// SignatureSize is the size in bytes of a Signature.
const SignatureSize = ed25519.SignatureSize

// Digest is a 32-byte cryptographic hash output. The all-zero Digest is a
// valid anchor: it is the implicit predecessor of the first entry of any
// chain.
type Digest [DigestSize]byte

// PublicKey is a 32-byte Ed25519 public key.
type PublicKey [PublicKeySize]byte

// Signature is a 64-byte Ed25519 signature.
type Signature [SignatureSize]byte

// ErrKeyGeneration is returned by GenerateKeyPair when the system RNG is
// unavailable. Unlike every other operation in this package, key generation
// failure indicates a broken host environment rather than a bad input, so
// it is surfaced as a real error instead of collapsing into a boolean.
var ErrKeyGeneration = errors.New("poh: key generation failed")

// KeyPair is an Ed25519 signing key pair. The core never persists or
// transmits the private half; it is owned exclusively by whoever generated
// it.
type KeyPair struct {
	public  PublicKey
	private ed25519.PrivateKey
}

// Hash returns the SHA-256 digest of b.
func Hash(b []byte) Digest {
	return Digest(sha256.Sum256(b))
}

// ExtendAndHash returns hash(prev || tag || payload). The tag byte
// domain-separates event kinds when folding an event into the chain hash
// (see Fold); callers outside this package should treat it as an opaque
// extension primitive.
func ExtendAndHash(prev Digest, tag byte, payload []byte) Digest {
	buf := make([]byte, 0, DigestSize+1+len(payload))
	buf = append(buf, prev[:]...)
	buf = append(buf, tag)
	buf = append(buf, payload...)
	return Hash(buf)
}

// GenerateKeyPair produces a new Ed25519 key pair using the system's
// cryptographically secure RNG. crypto/rand.Reader is safe for concurrent
// use, so GenerateKeyPair may be called from multiple goroutines.
func GenerateKeyPair() (KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, ErrKeyGeneration
	}
	var kp KeyPair
	copy(kp.public[:], pub)
	kp.private = priv
	return kp, nil
}

// PubkeyOf returns the public half of kp.
func PubkeyOf(kp KeyPair) PublicKey {
	return kp.public
}

// Sign returns the Ed25519 signature of msg under kp's private key.
func Sign(kp KeyPair, msg []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(kp.private, msg))
	return sig
}

// VerifySig reports whether sig is a valid Ed25519 signature of msg under
// pubkey. It never panics: a malformed key or signature (this package's
// fixed-size types rule that out, but callers reconstructing a PublicKey or
// Signature from untrusted bytes should still go through these fixed-size
// types rather than ed25519.Verify directly) simply yields false.
func VerifySig(pubkey PublicKey, msg []byte, sig Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pubkey[:]), msg, sig[:])
}

// SignPayload signs encode(data) under kp. This is the signing helper used
// for Claim events.
func SignPayload[T Encodable](data T, kp KeyPair) Signature {
	return Sign(kp, encode(data))
}

// SignTransfer signs encode(data, to) under kp. Binding the destination
// into the signed message is what prevents a third party from redirecting
// a Transaction to a different recipient (see VerifyEvent).
func SignTransfer[T Encodable](data T, kp KeyPair, to PublicKey) Signature {
	return Sign(kp, encodeTransfer(data, to))
}
