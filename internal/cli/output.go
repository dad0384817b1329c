// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayDemo], [DisplaySummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatValue], [FormatMagnitude], [FormatExecutionDuration].
//
//   - Write* functions serialize data for other tools.
//     Examples: [WriteMetrics].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/agbru/bignum/internal/bignum"
	"github.com/agbru/bignum/internal/config"
)

// FormatValue renders v according to format. Unknown formats fall back to
// the debug representation.
func FormatValue(v bignum.Int, format string) string {
	switch format {
	case config.FormatDec:
		return v.String()
	case config.FormatHex:
		return fmt.Sprintf("%#x", v)
	default:
		return v.GoString()
	}
}

// FormatMagnitude renders a raw limb slice, least significant limb first,
// according to format.
func FormatMagnitude(limbs []bignum.Limb, format string) string {
	switch format {
	case config.FormatDec, config.FormatHex:
		z := new(big.Int)
		for i := len(limbs) - 1; i >= 0; i-- {
			z.Lsh(z, 32)
			z.Or(z, new(big.Int).SetUint64(uint64(limbs[i])))
		}
		if format == config.FormatHex {
			return fmt.Sprintf("%#x", z)
		}
		return z.String()
	default:
		parts := make([]string, len(limbs))
		for i, l := range limbs {
			parts[i] = fmt.Sprintf("0x%08x", l)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
}

// demoEntry is one line of the demo table.
type demoEntry struct {
	expr   string
	render func(format string) string
}

func valueEntry(expr string, v bignum.Int) demoEntry {
	return demoEntry{expr: expr, render: func(format string) string { return FormatValue(v, format) }}
}

func magnitudeEntry(expr string, limbs []bignum.Limb) demoEntry {
	return demoEntry{expr: expr, render: func(format string) string { return FormatMagnitude(limbs, format) }}
}

func constructorDemo() []demoEntry {
	return []demoEntry{
		valueEntry("Zero()", bignum.Zero()),
		valueEntry("FromUint32(12345)", bignum.FromUint32(12345)),
		valueEntry("FromInt32(-54321)", bignum.FromInt32(-54321)),
		valueEntry("FromInt32(0)", bignum.FromInt32(0)),
		valueEntry("FromUint64(0x1_0000_0001)", bignum.FromUint64(0x1_0000_0001)),
		valueEntry("FromInt64(-0x2_0000_0001)", bignum.FromInt64(-0x2_0000_0001)),
	}
}

func arithmeticDemo() []demoEntry {
	return []demoEntry{
		valueEntry("FromInt32(123) + FromInt32(456)",
			bignum.FromInt32(123).Add(bignum.FromInt32(456))),
		valueEntry("FromInt32(50) + FromInt32(-200)",
			bignum.FromInt32(50).Add(bignum.FromInt32(-200))),
		valueEntry("FromUint64(0xFFFFFFFF) + FromUint64(1)",
			bignum.FromUint64(0xFFFFFFFF).Add(bignum.FromUint64(1))),
		valueEntry("FromUint64(0xFFFFFFFFFFFFFFFF) + FromUint64(1)",
			bignum.FromUint64(0xFFFFFFFFFFFFFFFF).Add(bignum.FromUint64(1))),
		magnitudeEntry("SubtractMagnitudes([0 1], [1])",
			bignum.SubtractMagnitudes([]bignum.Limb{0, 1}, []bignum.Limb{1})),
		valueEntry("FromInt32(789) - FromInt32(789)",
			bignum.FromInt32(789).Sub(bignum.FromInt32(789))),
	}
}

// DisplayDemo writes the constructor and arithmetic demonstrations to out,
// rendering every value in format.
func DisplayDemo(out io.Writer, format string) error {
	sections := []struct {
		title   string
		entries []demoEntry
	}{
		{"Constructors", constructorDemo()},
		{"Arithmetic", arithmeticDemo()},
	}

	width := 0
	for _, s := range sections {
		for _, e := range s.entries {
			width = max(width, len(e.expr))
		}
	}

	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(out, "%s:\n", s.title); err != nil {
			return err
		}
		for _, e := range s.entries {
			if _, err := fmt.Fprintf(out, "  %-*s = %s\n", width, e.expr, e.render(format)); err != nil {
				return err
			}
		}
	}
	return nil
}
