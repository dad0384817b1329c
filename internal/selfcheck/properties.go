package selfcheck

import (
	"math/big"

	"github.com/agbru/bignum/internal/bignum"
)

// property is a named check over one case. On failure it returns the
// rendered expected and actual values.
type property struct {
	name  string
	check func(c testCase) (want, got string, ok bool)
}

var properties = []property{
	{"canonical", func(c testCase) (string, string, bool) {
		for _, v := range []bignum.Int{c.x, c.y, c.x.Add(c.y), c.x.Sub(c.y), c.x.Neg()} {
			if !canonical(v) {
				return "canonical form", v.GoString(), false
			}
		}
		return "", "", true
	}},
	{"add", func(c testCase) (string, string, bool) {
		return matchBig(c.x.Add(c.y), new(big.Int).Add(c.bx, c.by))
	}},
	{"sub", func(c testCase) (string, string, bool) {
		return matchBig(c.x.Sub(c.y), new(big.Int).Sub(c.bx, c.by))
	}},
	{"commutative", func(c testCase) (string, string, bool) {
		xy, yx := c.x.Add(c.y), c.y.Add(c.x)
		return xy.GoString(), yx.GoString(), xy.Equal(yx)
	}},
	{"inverse", func(c testCase) (string, string, bool) {
		z := c.x.Add(c.x.Neg())
		return bignum.Zero().GoString(), z.GoString(), z.IsZero() && z.Sign() == bignum.Positive
	}},
	{"negation", func(c testCase) (string, string, bool) {
		n := c.x.Neg().Neg()
		return c.x.GoString(), n.GoString(), n.Equal(c.x)
	}},
	{"roundtrip", func(c testCase) (string, string, bool) {
		r := c.x.Sub(c.y).Add(c.y)
		return c.x.GoString(), r.GoString(), r.Equal(c.x)
	}},
}

func matchBig(got bignum.Int, want *big.Int) (string, string, bool) {
	return want.String(), got.String(), got.ToBig().Cmp(want) == 0
}

// canonical reports whether v satisfies the representation invariants as seen
// through the public API.
func canonical(v bignum.Int) bool {
	m := v.Magnitude()
	if len(m) == 0 || (len(m) > 1 && m[len(m)-1] == 0) {
		return false
	}
	return !v.IsZero() || v.Sign() == bignum.Positive
}
