package secp256k1

// NAF is a dense, general-width non-adjacent-form signed-digit
// recoding of a scalar: one signed byte per digit position, zero or an
// odd integer in (-2^w, 2^w). For w = 1 no two non-zero digits are
// adjacent; for wider w a negative digit is followed by a shift of one
// position only, so non-zero digits can be adjacent (GetNAF(5, 2) yields
// -1, 3). Capacity of 512 digit positions comfortably
// covers any 256-bit scalar at any window width this package uses.
type NAF struct {
	digits [512]int8
	length int
}

func (n *NAF) push(d int8) {
	n.digits[n.length] = d
	n.length++
}

func (n *NAF) pushZeros(count int) {
	n.length += count
}

// Digits returns the produced digit sequence, low-order first.
func (n *NAF) Digits() []int8 { return n.digits[:n.length] }

// GetNAF recodes k into width-w non-adjacent form. w must be small
// enough that digit magnitudes (< 2^w) fit in an int8 (w <= 6 in
// practice; this package only ever calls it with small test widths and
// uses GetNAF1 for the width-1 generator path).
func GetNAF(k BigNum, w uint) NAF {
	var out NAF
	width := uint64(1) << (w + 1)
	half := uint32(width / 2)
	for !k.IsZero() {
		if k.IsEven() {
			tz := k.TrailingZeroBits()
			out.pushZeros(tz)
			k = k.ShiftRight(uint(tz))
			continue
		}
		m := k.LowBits(w + 1)
		if m > half {
			out.push(int8(int32(half) - int32(m)))
			k = k.AddUint32(m - half)
			k = k.ShiftRight(1)
		} else {
			out.push(int8(m))
			k = k.SubUint32(m)
			if !k.IsZero() && w > 1 {
				out.pushZeros(int(w - 1))
			}
			k = k.ShiftRight(w)
		}
	}
	return out
}

// nafReprCapacity is the number of ternary digit positions a NAFRepr can
// hold (66 bytes * 4 digits/byte). A width-1 NAF recoding of a 256-bit
// scalar can carry into a 257th digit position, one more than the
// scalar's own bit length, so 256 positions is one short; 264 gives
// headroom and lines up with the generator table's 66 slots of 4
// digits each.
const nafReprCapacity = 264

// NAFRepr is a packed width-1 non-adjacent-form recoding, used for the
// generator scalar-multiplication path: four ternary digits ({-1, 0, 1})
// packed two bits each per byte, so a 256-bit scalar's worst-case 257
// digits fit in 65 bytes instead of 257 bytes.
type NAFRepr struct {
	data [nafReprCapacity / 4]byte
	n    int
}

func (r *NAFRepr) push(d int8) {
	byteIdx := r.n / 4
	shift := uint(r.n%4) * 2
	var bits byte
	switch d {
	case 1:
		bits = 0x1
	case -1:
		bits = 0x3
	}
	r.data[byteIdx] |= bits << shift
	r.n++
}

func (r *NAFRepr) pushZeros(count int) { r.n += count }

// Len returns the number of digit positions produced.
func (r *NAFRepr) Len() int { return r.n }

// At returns the signed digit at position i (0 for any position beyond
// what was produced, by construction: the packed array starts zeroed).
func (r *NAFRepr) At(i int) int8 {
	byteIdx := i / 4
	shift := uint(i%4) * 2
	v := (r.data[byteIdx] >> shift) & 0x3
	switch v {
	case 0x1:
		return 1
	case 0x3:
		return -1
	default:
		return 0
	}
}

// GetNAF1 recodes k into width-1 non-adjacent form, packed. This is the
// recoding the generator table's windowed scalar multiplication consumes.
func GetNAF1(k BigNum) NAFRepr {
	var out NAFRepr
	for !k.IsZero() {
		if k.IsEven() {
			tz := k.TrailingZeroBits()
			out.pushZeros(tz)
			k = k.ShiftRight(uint(tz))
			continue
		}
		m := k.LowBits(2)
		if m > 2 {
			out.push(int8(2 - int32(m)))
			k = k.AddUint32(m - 2)
		} else {
			out.push(int8(m))
			k = k.SubUint32(m)
		}
		k = k.ShiftRight(1)
	}
	return out
}
