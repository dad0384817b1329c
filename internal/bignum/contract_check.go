//go:build !bignum_release

package bignum

import apperrors "github.com/agbru/bignum/internal/errors"

// contractChecks reports whether caller contract violations panic.
const contractChecks = true

func checkSubtractOrder(a, b []Limb) {
	if CompareMagnitude(a, b) == Less {
		panic(apperrors.ContractError{
			Op:     "bignum.SubtractMagnitudes",
			Detail: "minuend magnitude is smaller than subtrahend",
		})
	}
}
