package selfcheck

import (
	"errors"
	"math/big"
	"testing"

	"github.com/agbru/bignum/internal/bignum"
	apperrors "github.com/agbru/bignum/internal/errors"
)

func TestNewCase_MirrorsOracle(t *testing.T) {
	t.Parallel()
	for i := 0; i < 300; i++ {
		c := newCase(12345, i, 200)
		if c.x.ToBig().Cmp(c.bx) != 0 {
			t.Fatalf("case %d: x = %v, oracle %v", i, c.x, c.bx)
		}
		if c.y.ToBig().Cmp(c.by) != 0 {
			t.Fatalf("case %d: y = %v, oracle %v", i, c.y, c.by)
		}
	}
}

func TestNewCase_Reproducible(t *testing.T) {
	t.Parallel()
	a, b := newCase(3, 17, 100), newCase(3, 17, 100)
	if a.x.GoString() != b.x.GoString() || a.y.GoString() != b.y.GoString() {
		t.Fatalf("same seed and index gave %#v/%#v and %#v/%#v", a.x, a.y, b.x, b.y)
	}
	if c := newCase(4, 17, 100); c.x.Equal(a.x) && c.y.Equal(a.y) {
		t.Error("different seeds gave identical operands")
	}
}

func TestNewCase_NoDoublingsStaysSmall(t *testing.T) {
	t.Parallel()
	for i := 0; i < 100; i++ {
		c := newCase(1, i, 0)
		if c.x.Len() > 3 || c.y.Len() > 3 {
			t.Fatalf("case %d: operands of %d and %d limbs without doubling", i, c.x.Len(), c.y.Len())
		}
	}
}

func TestProperties_HoldOnScenarios(t *testing.T) {
	t.Parallel()
	cases := []testCase{
		{x: bignum.FromInt32(123), y: bignum.FromInt32(456), bx: big.NewInt(123), by: big.NewInt(456)},
		{x: bignum.FromInt32(50), y: bignum.FromInt32(-200), bx: big.NewInt(50), by: big.NewInt(-200)},
		{x: bignum.FromInt32(789), y: bignum.FromInt32(789), bx: big.NewInt(789), by: big.NewInt(789)},
		{x: bignum.Zero(), y: bignum.Zero(), bx: big.NewInt(0), by: big.NewInt(0)},
	}
	for _, c := range cases {
		for _, p := range properties {
			if want, got, ok := p.check(c); !ok {
				t.Errorf("%s on (%v, %v): want %s, got %s", p.name, c.x, c.y, want, got)
			}
		}
	}
}

func TestCheckCase_ReportsViolation(t *testing.T) {
	t.Parallel()
	r, err := NewRunner(Options{Cases: 1, Workers: 1})
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	// A wrong oracle value makes the "add" property fail.
	c := testCase{
		index: 4,
		x:     bignum.FromInt32(2),
		y:     bignum.FromInt32(3),
		bx:    big.NewInt(2),
		by:    big.NewInt(4),
	}
	err = r.checkCase(c)

	var failure apperrors.CheckFailureError
	if !errors.As(err, &failure) {
		t.Fatalf("checkCase error = %v, want CheckFailureError", err)
	}
	if failure.Property != "add" || failure.Case != 4 || failure.Want != "6" || failure.Got != "5" {
		t.Errorf("failure = %+v", failure)
	}
	if r.summary.Cases != 0 {
		t.Errorf("failed case counted as checked")
	}
}

func TestCanonical(t *testing.T) {
	t.Parallel()
	for _, v := range []bignum.Int{{}, bignum.Zero(), bignum.FromInt64(-1), bignum.FromUint64(1 << 40)} {
		if !canonical(v) {
			t.Errorf("%#v reported non-canonical", v)
		}
	}
}
