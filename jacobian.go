package secp256k1

// ECJPoint is a Jacobian secp256k1 curve point: (X, Y, Z) represents the
// affine point (X/Z^2, Y/Z^3). The point at infinity is any point with
// Z == 0; JacobianInfinity returns the canonical representative.
type ECJPoint struct {
	X, Y, Z BigNum
}

// JacobianInfinity returns the canonical Jacobian point at infinity.
func JacobianInfinity() ECJPoint { return ECJPoint{X: One, Y: One, Z: Zero} }

// IsInfinity reports whether p is the point at infinity.
func (p ECJPoint) IsInfinity() bool { return p.Z.IsZero() }

// FromAffine lifts an affine point into Jacobian coordinates.
func FromAffine(p ECPoint) ECJPoint {
	if p.Inf {
		return JacobianInfinity()
	}
	return ECJPoint{X: p.X, Y: p.Y, Z: One}
}

// ToAffine projects p back into affine coordinates.
func (p ECJPoint) ToAffine() ECPoint {
	if p.IsInfinity() {
		return Infinity
	}
	zinv := RedInvm(p.Z)
	zinv2 := RedSqr(zinv)
	ax := RedMul(p.X, zinv2)
	ay := RedMul(RedMul(p.Y, zinv2), zinv)
	return ECPoint{X: ax, Y: ay}
}

// Dbl returns p + p. It special-cases Z == 1 (the mixed-doubling
// formula, one multiplication cheaper) separately from the general
// case, matching the EFD's doubling-mdbl-2007-bl and doubling-dbl-2009-l
// formulas respectively.
func (p ECJPoint) Dbl() ECJPoint {
	if p.IsInfinity() {
		return p
	}
	var nx, ny, nz BigNum
	if cmpMagnitude(p.Z, One) == 0 {
		xx := RedSqr(p.X)
		yy := RedSqr(p.Y)
		yyyy := RedSqr(yy)
		s := RedSub(RedSub(RedSqr(RedAdd(p.X, yy)), xx), yyyy)
		s = RedDouble(s)
		m := RedAdd(RedDouble(xx), xx)
		t := RedSub(RedSub(RedSqr(m), s), s)
		yyyy8 := RedDouble(RedDouble(RedDouble(yyyy)))
		nx = t
		ny = RedSub(RedMul(m, RedSub(s, t)), yyyy8)
		nz = RedDouble(p.Y)
	} else {
		a := RedSqr(p.X)
		b := RedSqr(p.Y)
		c := RedSqr(b)
		d := RedSub(RedSub(RedSqr(RedAdd(p.X, b)), a), c)
		d = RedDouble(d)
		e := RedAdd(RedDouble(a), a)
		f := RedSqr(e)
		c8 := RedDouble(RedDouble(RedDouble(c)))
		nx = RedSub(RedSub(f, d), d)
		ny = RedSub(RedMul(e, RedSub(d, nx)), c8)
		nz = RedDouble(RedMul(p.Y, p.Z))
	}
	return ECJPoint{X: nx, Y: ny, Z: nz}
}

// jacobianAddCommon finishes the shared tail of AddVar and MixedAdd once
// both sides have computed U1, U2, S1, S2 and the shared Z factor that
// only differs between the general and mixed cases.
func jacobianAddCommon(u1, s1, h, r, zFactor BigNum) (nx, ny, nz BigNum) {
	h2 := RedSqr(h)
	h3 := RedMul(h2, h)
	u1h2 := RedMul(u1, h2)
	nx = RedSub(RedAdd(RedSqr(r), h3), RedDouble(u1h2))
	ny = RedSub(RedMul(r, RedSub(u1h2, nx)), RedMul(s1, h3))
	nz = RedMul(zFactor, h)
	return nx, ny, nz
}

// AddVar returns p + q for two Jacobian points, following the EFD's
// addition-add-1998-cmo-2 formula.
func (p ECJPoint) AddVar(q ECJPoint) ECJPoint {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	z1z1 := RedSqr(p.Z)
	z2z2 := RedSqr(q.Z)
	u1 := RedMul(p.X, z2z2)
	u2 := RedMul(q.X, z1z1)
	s1 := RedMul(RedMul(p.Y, z2z2), q.Z)
	s2 := RedMul(RedMul(q.Y, z1z1), p.Z)
	h := RedSub(u1, u2)
	r := RedSub(s1, s2)
	if h.IsZero() {
		if r.IsZero() {
			return p.Dbl()
		}
		return JacobianInfinity()
	}
	nx, ny, nz := jacobianAddCommon(u1, s1, h, r, RedMul(p.Z, q.Z))
	return ECJPoint{X: nx, Y: ny, Z: nz}
}

// MixedAdd returns p + q where q is affine (Z implicitly 1), the cheaper
// 8M+3S form of the same addition formula used by the generator table's
// windowed accumulator.
func (p ECJPoint) MixedAdd(q ECPoint) ECJPoint {
	if p.IsInfinity() {
		return FromAffine(q)
	}
	if q.Inf {
		return p
	}
	z1z1 := RedSqr(p.Z)
	u1 := p.X
	u2 := RedMul(q.X, z1z1)
	s1 := p.Y
	s2 := RedMul(RedMul(q.Y, z1z1), p.Z)
	h := RedSub(u1, u2)
	r := RedSub(s1, s2)
	if h.IsZero() {
		if r.IsZero() {
			return p.Dbl()
		}
		return JacobianInfinity()
	}
	nx, ny, nz := jacobianAddCommon(u1, s1, h, r, p.Z)
	return ECJPoint{X: nx, Y: ny, Z: nz}
}
