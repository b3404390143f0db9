// Package secp256k1 turns a 32-byte secret scalar into the 65-byte
// uncompressed encoding of the corresponding secp256k1 public key.
//
// The package is organised bottom-up: BigNum is a signed-magnitude
// 256-bit-class integer (bignum.go); the Red* functions build field
// arithmetic mod the curve prime on top of it (field.go); NAF and
// NAFRepr recode scalars into signed-digit form (naf.go); ECPoint and
// ECJPoint implement affine and Jacobian curve-point arithmetic
// (point.go, jacobian.go); GeneratorTable precomputes a table of
// multiples of the generator and uses it to multiply by scalars with a
// windowed NAF accumulator (generator.go). IsValidSecret and
// CreatePublicKey (seckey.go) are the only two functions most callers
// need.
//
// Apart from the table that NewGeneratorTable allocates and returns by
// pointer, every value in this package is passed and returned by value,
// and there is no I/O anywhere in the arithmetic. A *GeneratorTable,
// once built, is read-only and safe to share across goroutines, but
// none of the arithmetic here runs in constant time, so callers handling
// secret scalars are responsible for whatever side-channel mitigations
// their deployment requires.
package secp256k1
