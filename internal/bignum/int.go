package bignum

// Limb is a single base-2³² digit of a magnitude.
type Limb = uint32

// Sign is the sign of an Int. It is never zero.
type Sign int8

const (
	Positive Sign = 1
	Negative Sign = -1
)

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Int is an immutable sign-magnitude integer. The zero value is 0.
type Int struct {
	sign  Sign
	limbs []Limb
}

// zeroMagnitude is shared by reads of the zero value and is never handed out.
var zeroMagnitude = []Limb{0}

// Zero returns the canonical zero.
func Zero() Int {
	return Int{sign: Positive, limbs: []Limb{0}}
}

// FromUint32 creates an Int from a uint32.
func FromUint32(v uint32) Int {
	return Int{sign: Positive, limbs: []Limb{v}}
}

// FromInt32 creates an Int from an int32. math.MinInt32 is handled without
// overflow.
func FromInt32(v int32) Int {
	if v < 0 {
		return Int{sign: Negative, limbs: []Limb{uint32(-int64(v))}}
	}
	return Int{sign: Positive, limbs: []Limb{uint32(v)}}
}

// FromUint64 creates an Int from a uint64, using a single limb when the high
// half is zero.
func FromUint64(v uint64) Int {
	return Int{sign: Positive, limbs: limbsFromUint64(v)}
}

// FromInt64 creates an Int from an int64. math.MinInt64 is handled without
// overflow.
func FromInt64(v int64) Int {
	if v < 0 {
		// Two's complement negation of the unsigned bits is the absolute value,
		// including for math.MinInt64.
		return Int{sign: Negative, limbs: limbsFromUint64(-uint64(v))}
	}
	return Int{sign: Positive, limbs: limbsFromUint64(uint64(v))}
}

func limbsFromUint64(v uint64) []Limb {
	lo, hi := uint32(v), uint32(v>>32)
	if hi == 0 {
		return []Limb{lo}
	}
	return []Limb{lo, hi}
}

// mag returns the receiver's limbs, substituting [0] for the zero value. The
// result aliases internal storage and must not be modified.
func (x Int) mag() []Limb {
	if len(x.limbs) == 0 {
		return zeroMagnitude
	}
	return x.limbs
}

// Sign returns Positive or Negative. Zero is Positive.
func (x Int) Sign() Sign {
	if x.sign == Negative && !x.IsZero() {
		return Negative
	}
	return Positive
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	m := x.mag()
	return len(m) == 1 && m[0] == 0
}

// Len returns the number of limbs in the canonical magnitude of x. It is
// always at least 1.
func (x Int) Len() int { return len(x.mag()) }

// Magnitude returns a copy of the limbs of |x|, least-significant first.
func (x Int) Magnitude() []Limb {
	m := x.mag()
	out := make([]Limb, len(m))
	copy(out, m)
	return out
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{sign: Positive, limbs: x.mag()}
}

// Equal reports whether x and y hold the same value.
func (x Int) Equal(y Int) bool {
	return x.Sign() == y.Sign() && CompareMagnitude(x.mag(), y.mag()) == Equal
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		return int(xs)
	}
	c := int(CompareMagnitude(x.mag(), y.mag()))
	if xs == Negative {
		return -c
	}
	return c
}
