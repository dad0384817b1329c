// Package apperrors defines the error types shared by the bignum tools,
// separating configuration problems, selfcheck failures and programming
// contract violations, and carrying the underlying cause where there is one.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that carry a cause implement Unwrap() to support errors.Is() and errors.As().
package apperrors
