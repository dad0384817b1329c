// Package bignum implements a sign-magnitude arbitrary-precision integer.
//
// An Int is a sign (Positive or Negative) and a magnitude stored as base-2³²
// limbs, least-significant limb first. Every Int observable outside this
// package is canonical: the magnitude has no most-significant zero limb, zero
// is the single limb [0], and zero is always Positive.
//
// Int is a value type; all operations return new values and never modify
// their receiver or arguments, so an Int may be shared freely between
// goroutines:
//
//	x := bignum.FromInt32(50)
//	y := bignum.FromInt32(-200)
//	fmt.Println(x.Add(y))
//	// Output: -150
//
// The magnitude primitives CompareMagnitude, AddMagnitudes and
// SubtractMagnitudes are exported for the layers built on top of this one
// (multiplication, modular reduction). SubtractMagnitudes requires its
// minuend to be at least as large as its subtrahend; a violation panics with
// an apperrors.ContractError unless the package is built with the
// bignum_release tag.
package bignum
