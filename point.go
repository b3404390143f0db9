package secp256k1

// ECPoint is an affine secp256k1 curve point: (X, Y) satisfying
// Y^2 = X^3 + 7 mod P, or the point at infinity when Inf is true (X and
// Y are then unspecified).
type ECPoint struct {
	X, Y BigNum
	Inf  bool
}

// Infinity is the affine point at infinity, the group's identity
// element.
var Infinity = ECPoint{Inf: true}

// Generator is the secp256k1 base point G.
var Generator ECPoint

func init() {
	gx := BigNumFromBytes([]byte{
		0x79, 0xbe, 0x66, 0x7e, 0xf9, 0xdc, 0xbb, 0xac, 0x55, 0xa0, 0x62,
		0x95, 0xce, 0x87, 0x0b, 0x07, 0x02, 0x9b, 0xfc, 0xdb, 0x2d, 0xce,
		0x28, 0xd9, 0x59, 0xf2, 0x81, 0x5b, 0x16, 0xf8, 0x17, 0x98,
	})
	gy := BigNumFromBytes([]byte{
		0x48, 0x3a, 0xda, 0x77, 0x26, 0xa3, 0xc4, 0x65, 0x5d, 0xa4, 0xfb,
		0xfc, 0x0e, 0x11, 0x08, 0xa8, 0xfd, 0x17, 0xb4, 0x48, 0xa6, 0x85,
		0x54, 0x19, 0x9c, 0x47, 0xd0, 0x8f, 0xfb, 0x10, 0xd4, 0xb8,
	})
	Generator = ECPoint{X: gx, Y: gy}
}

// IsInfinity reports whether p is the point at infinity.
func (p ECPoint) IsInfinity() bool { return p.Inf }

// Neg returns -p.
func (p ECPoint) Neg() ECPoint {
	if p.Inf {
		return p
	}
	return ECPoint{X: p.X, Y: RedNeg(p.Y)}
}

// Equal reports whether p and q denote the same affine point.
func (p ECPoint) Equal(q ECPoint) bool {
	if p.Inf || q.Inf {
		return p.Inf == q.Inf
	}
	return cmpMagnitude(p.X, q.X) == 0 && cmpMagnitude(p.Y, q.Y) == 0
}

// Double returns p + p.
func (p ECPoint) Double() ECPoint {
	if p.Inf {
		return p
	}
	yy := RedDouble(p.Y)
	if yy.IsZero() {
		return Infinity
	}
	xx := RedSqr(p.X)
	threeXX := RedAdd(RedDouble(xx), xx)
	s := RedMul(threeXX, RedInvm(yy))
	nx := RedSub(RedSub(RedSqr(s), p.X), p.X)
	ny := RedSub(RedMul(s, RedSub(p.X, nx)), p.Y)
	return ECPoint{X: nx, Y: ny}
}

// Add returns p + q.
func (p ECPoint) Add(q ECPoint) ECPoint {
	if p.Inf {
		return q
	}
	if q.Inf {
		return p
	}
	if cmpMagnitude(p.X, q.X) == 0 {
		if cmpMagnitude(p.Y, q.Y) == 0 {
			return p.Double()
		}
		return Infinity
	}
	s := RedSub(p.Y, q.Y)
	if !s.IsZero() {
		s = RedMul(s, RedInvm(RedSub(p.X, q.X)))
	}
	nx := RedSub(RedSub(RedSqr(s), p.X), q.X)
	ny := RedSub(RedMul(s, RedSub(p.X, nx)), p.Y)
	return ECPoint{X: nx, Y: ny}
}
