package secp256k1

// generatorTableSize is the number of precomputed multiples of G: with
// a window step of 4 bits, a 256-bit scalar needs ceil(256/4) + 1 = 65
// entries to have a corresponding table slot for every possible nibble
// position, plus one for the final partial window; 66 matches the
// generator table this package's scalar multiplication was ported from.
const generatorTableSize = 66

// GeneratorTable holds 16^i * G and its negation for i in
// [0, generatorTableSize), precomputed once. Building it is the
// expensive setup step; the result is immutable and safe to share
// read-only across goroutines, the same build-once-then-freeze pattern
// a signing context would use for its own precomputed tables.
type GeneratorTable struct {
	points    [generatorTableSize]ECPoint
	negPoints [generatorTableSize]ECPoint
}

// NewGeneratorTable precomputes the windowed generator table.
func NewGeneratorTable() *GeneratorTable {
	var t GeneratorTable
	acc := Generator
	t.points[0] = acc
	t.negPoints[0] = acc.Neg()
	for i := 1; i < generatorTableSize; i++ {
		acc = acc.Double()
		acc = acc.Double()
		acc = acc.Double()
		acc = acc.Double()
		t.points[i] = acc
		t.negPoints[i] = acc.Neg()
	}
	return &t
}

// windowDigits recodes k into one signed digit per table slot: first a
// bit-granular width-1 NAF (via GetNAF1), then every 4 consecutive NAF
// digit positions are folded into a single combined digit weighted
// 1, 2, 4, 8 — exactly the coefficient of 16^j in Σ digit_j · 16^j · G.
// The non-adjacency property of the underlying width-1 NAF bounds each
// combined digit's magnitude to I = 10 (the standard bound for folding
// a width-1 NAF into 4-bit windows, (2^(step+1)-2)/3 for even step = 4),
// matching the table's "four doublings per step" construction.
func windowDigits(k BigNum) [generatorTableSize]int8 {
	repr := GetNAF1(k)
	numGroups := (repr.Len() + 3) / 4
	if numGroups > generatorTableSize {
		numGroups = generatorTableSize
	}
	var digits [generatorTableSize]int8
	for g := 0; g < numGroups; g++ {
		base := g * 4
		v := int32(repr.At(base)) + 2*int32(repr.At(base+1)) +
			4*int32(repr.At(base+2)) + 8*int32(repr.At(base+3))
		digits[g] = int8(v)
	}
	return digits
}

// Mul computes k*G using the windowed Yao-style accumulator: recode k
// into one combined signed digit per table slot (windowDigits), then
// for each threshold i from 10 down to 1, fold every slot whose digit
// equals i (or -i) into a running accumulator B and add B into the
// running total A. B is never reset between thresholds, so its
// contribution telescopes across the outer loop exactly as Yao's method
// requires: by the time i reaches 1, B has accumulated every table
// entry whose digit was ever >= 1 in magnitude, added once per
// threshold it passed through. I = 10 is fixed for the window step of 4
// this table uses; it is not recomputed for other step sizes.
func (t *GeneratorTable) Mul(k BigNum) ECJPoint {
	const i0 = 10
	digits := windowDigits(k)
	a := JacobianInfinity()
	b := JacobianInfinity()
	for i := i0; i > 0; i-- {
		for g := 0; g < generatorTableSize; g++ {
			switch digits[g] {
			case int8(i):
				b = b.MixedAdd(t.points[g])
			case int8(-i):
				b = b.MixedAdd(t.negPoints[g])
			}
		}
		a = a.AddVar(b)
	}
	return a
}
