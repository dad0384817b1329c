package bignum

// Add returns x + y.
func (x Int) Add(y Int) Int {
	xs, ys := x.Sign(), y.Sign()
	xm, ym := x.mag(), y.mag()

	if xs == ys {
		return Int{sign: xs, limbs: AddMagnitudes(xm, ym)}
	}

	switch CompareMagnitude(xm, ym) {
	case Greater:
		return Int{sign: xs, limbs: SubtractMagnitudes(xm, ym)}
	case Less:
		return Int{sign: ys, limbs: SubtractMagnitudes(ym, xm)}
	default:
		// Opposite signs, same magnitude: the sum is zero, which is never
		// negative.
		return Zero()
	}
}

// Sub returns x - y, defined as x + (-y).
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Neg returns -x. The negation of zero is zero.
func (x Int) Neg() Int {
	if x.IsZero() {
		return Zero()
	}
	return Int{sign: -x.Sign(), limbs: x.mag()}
}
