package staff

import (
	"math"

	"github.com/shopspring/decimal"
)

// Amount is a money value used by wage policies.
//
// Finite inputs are held as exact decimals, so 10 * 40 is exactly 400
// and renders as "400". NaN and infinities cannot be represented by
// decimal; they are kept as float64 and follow float arithmetic from
// then on. The zero value is a finite 0.
type Amount struct {
	dec       decimal.Decimal
	raw       float64
	nonFinite bool
}

// AmountFromFloat converts f without validation. It never panics.
func AmountFromFloat(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{raw: f, nonFinite: true}
	}
	return Amount{dec: decimal.NewFromFloat(f)}
}

// IsFinite reports whether the amount is a real number.
func (a Amount) IsFinite() bool { return !a.nonFinite }

// Decimal returns the exact value. ok is false for NaN and infinities.
func (a Amount) Decimal() (d decimal.Decimal, ok bool) {
	if a.nonFinite {
		return decimal.Zero, false
	}
	return a.dec, true
}

// Float64 returns the nearest float64.
func (a Amount) Float64() float64 {
	if a.nonFinite {
		return a.raw
	}
	f, _ := a.dec.Float64()
	return f
}

// Mul multiplies exactly when both sides are finite.
func (a Amount) Mul(b Amount) Amount {
	if !a.nonFinite && !b.nonFinite {
		return Amount{dec: a.dec.Mul(b.dec)}
	}
	return AmountFromFloat(a.Float64() * b.Float64())
}

// String renders finite amounts without trailing zeros ("400", "412.5")
// and the others as "NaN", "inf" or "-inf".
func (a Amount) String() string {
	switch {
	case !a.nonFinite:
		return a.dec.String()
	case math.IsNaN(a.raw):
		return "NaN"
	case a.raw > 0:
		return "inf"
	default:
		return "-inf"
	}
}
