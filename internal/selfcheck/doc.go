// Package selfcheck verifies the bignum core at run time. It generates
// reproducible operands from a seed, checks the arithmetic properties of each
// case against math/big on a bounded pool of goroutines, and records what it
// checked in Prometheus counters.
package selfcheck
