package bignum

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
)

// ToBig returns x as a newly allocated *big.Int.
func (x Int) ToBig() *big.Int {
	m := x.mag()
	buf := make([]byte, 4*len(m))
	for i, l := range m {
		binary.BigEndian.PutUint32(buf[4*(len(m)-1-i):], l)
	}
	b := new(big.Int).SetBytes(buf)
	if x.Sign() == Negative {
		b.Neg(b)
	}
	return b
}

// String returns the decimal representation of x.
func (x Int) String() string {
	// FIXME: decimal conversion needs division, which this package does not
	// have yet; borrow math/big until it does.
	return x.ToBig().String()
}

// Format implements fmt.Formatter with the integer verbs of *big.Int.
func (x Int) Format(s fmt.State, c rune) {
	x.ToBig().Format(s, c)
}

// GoString prints the raw representation, e.g.
// bignum.Int{sign: -1, limbs: [0x00000001 0x00000002]}.
func (x Int) GoString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "bignum.Int{sign: %d, limbs: [", x.Sign())
	for i, l := range x.mag() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%08x", l)
	}
	sb.WriteString("]}")
	return sb.String()
}
