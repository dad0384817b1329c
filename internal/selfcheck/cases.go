package selfcheck

import (
	"math/big"
	"math/rand"

	"github.com/agbru/bignum/internal/bignum"
)

// testCase is a pair of operands and their math/big mirrors.
type testCase struct {
	index  int
	x, y   bignum.Int
	bx, by *big.Int
}

// newCase derives case i from seed. Each case owns its random source, so the
// operands do not depend on which worker checks it or in what order.
func newCase(seed int64, i, maxDoublings int) testCase {
	rng := rand.New(rand.NewSource(seed + int64(i)))
	x, bx := operand(rng, maxDoublings)
	y, by := operand(rng, maxDoublings)
	return testCase{index: i, x: x, y: y, bx: bx, by: by}
}

// operand builds a value using only the core's constructors and Add: a random
// signed 64-bit value doubled up to maxDoublings times, plus a random signed
// 64-bit offset.
func operand(rng *rand.Rand, maxDoublings int) (bignum.Int, *big.Int) {
	base := int64(rng.Uint64())
	x, bx := bignum.FromInt64(base), big.NewInt(base)

	for n := rng.Intn(maxDoublings + 1); n > 0; n-- {
		x = x.Add(x)
		bx.Add(bx, bx)
	}

	switch rng.Intn(4) {
	case 0:
		// Leave as is.
	case 1:
		off := int64(rng.Uint64())
		x = x.Add(bignum.FromInt64(off))
		bx.Add(bx, big.NewInt(off))
	case 2:
		off := rng.Uint32()
		x = x.Add(bignum.FromUint32(off))
		bx.Add(bx, new(big.Int).SetUint64(uint64(off)))
	default:
		off := int32(rng.Uint32())
		x = x.Sub(bignum.FromInt32(off))
		bx.Sub(bx, big.NewInt(int64(off)))
	}
	return x, bx
}
