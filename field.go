package secp256k1

// Curve constants, bit-exact secp256k1 parameters.
var (
	// P is the field prime 2^256 - 2^32 - 977.
	P = newBigNum(
		0xFFFFFC2F, 0xFFFFFFFE, 0xFFFFFFFF, 0xFFFFFFFF,
		0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF,
	)

	// N is the group order.
	N = newBigNum(
		0xD0364141, 0xBFD25E8C, 0xAF48A03B, 0xBAAEDCE6,
		0xFFFFFFFE, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF,
	)

	// Zero and One are the additive and multiplicative identities,
	// useful as named BigNum values throughout the package.
	Zero = newBigNum(0)
	One  = newBigNum(1)

	// NH, NC and PSN are derived at init time rather than hand-encoded,
	// to avoid a transcription error in a 256-bit literal.
	NH  BigNum // floor(N / 2)
	NC  BigNum // 2^256 - N
	PSN BigNum // P - N

	// fieldReductionK is p's pseudo-Mersenne complement, 2^32 + 977.
	fieldReductionK = newBigNum(0x000003D1, 0x00000001)
)

func init() {
	NH = N.ShiftRight(1)

	var twoTo256 BigNum
	twoTo256.words[8] = 1
	twoTo256.length = 9
	NC = twoTo256.Sub(N)

	PSN = P.Sub(N)
}

// RedAdd returns (a + b) mod p, for a, b already reduced into [0, p).
func RedAdd(a, b BigNum) BigNum {
	r := addMagnitude(a, b)
	if cmpMagnitude(r, P) >= 0 {
		r = subMagnitude(r, P)
	}
	r.strip()
	return r
}

// RedSub returns (a - b) mod p, for a, b already reduced into [0, p).
func RedSub(a, b BigNum) BigNum {
	if cmpMagnitude(a, b) >= 0 {
		r := subMagnitude(a, b)
		r.strip()
		return r
	}
	diff := subMagnitude(b, a)
	r := subMagnitude(P, diff)
	r.strip()
	return r
}

// RedDouble returns (2a) mod p.
func RedDouble(a BigNum) BigNum { return RedAdd(a, a) }

// RedNeg returns (-a) mod p.
func RedNeg(a BigNum) BigNum {
	if a.IsZero() {
		return Zero
	}
	r := subMagnitude(P, a)
	r.strip()
	return r
}

// RedReduce folds an unreduced value (up to the full double-width
// product of two field elements) back into [0, p) using the field
// prime's pseudo-Mersenne structure: p = 2^256 - k, k = 2^32 + 977, so
// splitting a value v = H*2^256 + L gives v ≡ H*k + L (mod p). H*k is
// itself computed with the same generic multiply used everywhere else
// in the package rather than a hand-rolled running accumulator; both
// realize the same arithmetic, see DESIGN.md.
func RedReduce(x BigNum) BigNum {
	v := x
	for pass := 0; pass < 3; pass++ {
		h := v.ShiftRight(256)
		if h.IsZero() {
			break
		}
		l := lowWords(v)
		hk := h.Mul(fieldReductionK)
		v = l.Add(hk)
	}
	switch cmpMagnitude(v, P) {
	case 0:
		return Zero
	case 1:
		r := subMagnitude(v, P)
		r.strip()
		return r
	}
	v.strip()
	return v
}

// RedMul returns (a * b) mod p.
func RedMul(a, b BigNum) BigNum {
	product := mul8x8(a.words8(), b.words8())
	var wide BigNum
	wide.words = product
	wide.length = bigNumWords
	wide.strip()
	return RedReduce(wide)
}

// RedSqr returns (a * a) mod p.
func RedSqr(a BigNum) BigNum { return RedMul(a, a) }

// RedInvm returns the modular inverse of a mod p via the binary extended
// Euclidean algorithm, distinct from a Fermat-exponentiation inverse:
// it halves both the running remainders and their Bezout coefficients
// instead of repeated squaring, and is mandated here rather than derived.
func RedInvm(a BigNum) BigNum {
	aa, bb := a, P
	x1, x2 := One, Zero

	for cmpMagnitude(aa, One) > 0 && cmpMagnitude(bb, One) > 0 {
		for aa.IsEven() {
			aa = aa.ShiftRight(1)
			if x1.IsOdd() {
				x1 = x1.Add(P)
			}
			x1 = x1.ShiftRight(1)
		}
		for bb.IsEven() {
			bb = bb.ShiftRight(1)
			if x2.IsOdd() {
				x2 = x2.Add(P)
			}
			x2 = x2.ShiftRight(1)
		}
		if cmpMagnitude(aa, bb) >= 0 {
			aa = subMagnitude(aa, bb)
			aa.strip()
			x1 = x1.Sub(x2)
		} else {
			bb = subMagnitude(bb, aa)
			bb.strip()
			x2 = x2.Sub(x1)
		}
	}

	var r BigNum
	if cmpMagnitude(aa, One) == 0 {
		r = x1
	} else {
		r = x2
	}
	for r.negative {
		r = r.Add(P)
	}
	for cmpMagnitude(r, P) >= 0 {
		r = subMagnitude(r, P)
	}
	r.strip()
	return r
}
