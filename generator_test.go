package secp256k1

import "testing"

// naiveScalarMul is a simple LSB-first double-and-add scalar multiply
// built only from ECPoint.Add/Double, independent of the windowed
// GeneratorTable machinery, used as a reference to cross-check it.
func naiveScalarMul(k BigNum) ECPoint {
	result := Infinity
	addend := Generator
	kk := k
	for !kk.IsZero() {
		if kk.IsOdd() {
			result = result.Add(addend)
		}
		addend = addend.Double()
		kk = kk.ShiftRight(1)
	}
	return result
}

func TestGeneratorTableMatchesNaiveScalarMul(t *testing.T) {
	table := NewGeneratorTable()
	vectors := []BigNum{
		One,
		newBigNum(2),
		newBigNum(3),
		newBigNum(4),
		newBigNum(0xFFFF),
		newBigNum(0xDEADBEEF),
		newBigNum(0, 0, 0, 0, 1), // 2^128
		N.Sub(One),
		N.Sub(newBigNum(2)),
		BigNumFromBytes(mustBytes32("777777777777777777777777777777777777777777777777777777777777777a")),
	}
	for _, k := range vectors {
		got := table.Mul(k).ToAffine()
		want := naiveScalarMul(k)
		if !got.Equal(want) {
			t.Fatalf("GeneratorTable.Mul(%+v) = %+v, want %+v (naive)", k, got, want)
		}
	}
}

func TestGeneratorTableOneIsGenerator(t *testing.T) {
	table := NewGeneratorTable()
	got := table.Mul(One).ToAffine()
	if !got.Equal(Generator) {
		t.Fatalf("1*G = %+v, want G", got)
	}
}

func TestGeneratorTableTwoIsDouble(t *testing.T) {
	table := NewGeneratorTable()
	got := table.Mul(newBigNum(2)).ToAffine()
	want := Generator.Double()
	if !got.Equal(want) {
		t.Fatalf("2*G = %+v, want G.Double() = %+v", got, want)
	}
}

func TestGeneratorTableOrderIsIdentity(t *testing.T) {
	table := NewGeneratorTable()
	got := table.Mul(N)
	if !got.ToAffine().IsInfinity() {
		t.Fatalf("n*G should be infinity, got %+v", got.ToAffine())
	}
}
