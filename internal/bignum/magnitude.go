package bignum

// Ordering is the result of comparing two magnitudes.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	}
	return "equal"
}

const limbMask = 1<<32 - 1

// CompareMagnitude orders two canonical magnitudes. Because neither input
// carries a most-significant zero limb, the longer one is the larger.
func CompareMagnitude(a, b []Limb) Ordering {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return Greater
		}
		return Less
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return Greater
			}
			return Less
		}
	}
	return Equal
}

// AddMagnitudes returns a + b. The inputs must be canonical; the result is
// canonical and never aliases either input.
func AddMagnitudes(a, b []Limb) []Limb {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]Limb, len(a), len(a)+1)

	var carry uint64
	i := 0
	for ; i < len(b); i++ {
		s := uint64(a[i]) + uint64(b[i]) + carry
		z[i] = Limb(s & limbMask)
		carry = s >> 32
	}
	for ; i < len(a) && carry != 0; i++ {
		s := uint64(a[i]) + carry
		z[i] = Limb(s & limbMask)
		carry = s >> 32
	}
	copy(z[i:], a[i:])

	if carry != 0 {
		z = append(z, Limb(carry))
	}
	return z
}

// SubtractMagnitudes returns a - b. The caller must ensure a >= b; see
// CompareMagnitude. The result is canonical and never aliases either input.
func SubtractMagnitudes(a, b []Limb) []Limb {
	checkSubtractOrder(a, b)

	z := make([]Limb, len(a))

	var borrow uint64
	i := 0
	for ; i < len(b); i++ {
		m, s := uint64(a[i]), uint64(b[i])+borrow
		if s > m {
			m += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = Limb(m - s)
	}
	for ; i < len(a) && borrow != 0; i++ {
		m := uint64(a[i])
		if m == 0 {
			m += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = Limb(m - 1)
	}
	copy(z[i:], a[i:])

	return trim(z)
}

// trim drops most-significant zero limbs, keeping at least one.
func trim(z []Limb) []Limb {
	n := len(z)
	for n > 1 && z[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []Limb{0}
	}
	return z[:n]
}
