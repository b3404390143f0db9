package secp256k1

// IsValidSecret reports whether secret is a valid secp256k1 secret
// scalar: exactly 32 bytes, big-endian, and in [1, n).
func IsValidSecret(secret []byte) bool {
	if len(secret) != 32 {
		return false
	}
	s := BigNumFromBytes(secret)
	if s.IsZero() {
		return false
	}
	return cmpMagnitude(s, N) < 0
}

// CreatePublicKey computes the 65-byte uncompressed public key
// (0x04 || X || Y) for secret, using table (built once via
// NewGeneratorTable and safe to reuse across calls and goroutines). ok
// is false, and pubkey is the zero value, if secret is not a valid
// secret scalar per IsValidSecret.
func CreatePublicKey(table *GeneratorTable, secret []byte) (pubkey [65]byte, ok bool) {
	if !IsValidSecret(secret) {
		return pubkey, false
	}
	k := BigNumFromBytes(secret)
	point := table.Mul(k).ToAffine()
	pubkey[0] = 0x04
	xb := point.X.Bytes()
	yb := point.Y.Bytes()
	copy(pubkey[1:33], xb[:])
	copy(pubkey[33:65], yb[:])
	return pubkey, true
}
