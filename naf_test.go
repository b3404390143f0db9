package secp256k1

import "testing"

// pow2 builds 2^i as a plain (unreduced) BigNum, for reconstructing NAF
// values in tests. i must be small enough to fit the fixed-width BigNum.
func pow2(i int) BigNum {
	wordIdx := i / 32
	bitIdx := uint(i % 32)
	var b BigNum
	b.length = wordIdx + 1
	b.words[wordIdx] = uint32(1) << bitIdx
	return b
}

func nafDigitsValue(digits []int8) BigNum {
	sum := Zero
	for i, d := range digits {
		if d == 0 {
			continue
		}
		mag := int32(d)
		neg := mag < 0
		if neg {
			mag = -mag
		}
		term := pow2(i).Mul(newBigNum(uint32(mag)))
		if neg {
			term = term.Negate()
		}
		sum = sum.Add(term)
	}
	return sum
}

func TestGetNAFReconstructsValue(t *testing.T) {
	values := []uint32{1, 2, 3, 7, 255, 0xABCDEF, 0x12345678}
	widths := []uint{1, 2, 3, 4, 5}
	for _, v := range values {
		for _, w := range widths {
			k := newBigNum(v)
			naf := GetNAF(k, w)
			got := nafDigitsValue(naf.Digits())
			if !got.Equal(k) {
				t.Fatalf("GetNAF(%#x, w=%d) does not reconstruct: got %+v want %+v", v, w, got, k)
			}
		}
	}
}

func TestGetNAFWidth1Adjacency(t *testing.T) {
	values := []uint32{0xFFFFFFFF, 0xAAAAAAAA, 0x55555555, 12345, 99999999}
	for _, v := range values {
		naf := GetNAF(newBigNum(v), 1)
		digits := naf.Digits()
		for i := 0; i+1 < len(digits); i++ {
			if digits[i] != 0 && digits[i+1] != 0 {
				t.Fatalf("width-1 NAF of %#x has adjacent non-zero digits at %d,%d", v, i, i+1)
			}
		}
	}
}

func TestGetNAF1ReconstructsValue(t *testing.T) {
	values := []uint32{1, 2, 3, 7, 255, 0xABCDEF, 0x12345678, 0xFFFFFFFF}
	for _, v := range values {
		k := newBigNum(v)
		repr := GetNAF1(k)
		digits := make([]int8, repr.Len())
		for i := range digits {
			digits[i] = repr.At(i)
		}
		got := nafDigitsValue(digits)
		if !got.Equal(k) {
			t.Fatalf("GetNAF1(%#x) does not reconstruct: got %+v want %+v", v, got, k)
		}
	}
}

func TestGetNAF1Adjacency(t *testing.T) {
	values := []uint32{0xFFFFFFFF, 0xAAAAAAAA, 0x55555555, 12345}
	for _, v := range values {
		repr := GetNAF1(newBigNum(v))
		for i := 0; i+1 < repr.Len(); i++ {
			if repr.At(i) != 0 && repr.At(i+1) != 0 {
				t.Fatalf("width-1 packed NAF of %#x has adjacent non-zero digits at %d,%d", v, i, i+1)
			}
		}
	}
}

func TestGetNAF1ZeroIsEmpty(t *testing.T) {
	repr := GetNAF1(Zero)
	if repr.Len() != 0 {
		t.Fatalf("GetNAF1(0) should produce no digits, got length %d", repr.Len())
	}
}
