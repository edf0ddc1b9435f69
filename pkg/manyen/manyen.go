// Package manyen provides helpers for amounts denominated in man-yen
// (units of 10,000 yen), the monetary unit used throughout the simulator.
// Tax and pension tables are statutory yen figures, so calculators convert
// to yen, apply the table, and convert back.
package manyen

import (
	"github.com/shopspring/decimal"
)

var yenPerMan = decimal.NewFromInt(10000)

// Yen converts a man-yen amount to yen.
func Yen(man decimal.Decimal) decimal.Decimal {
	return man.Mul(yenPerMan)
}

// FromYen converts a yen amount to man-yen without rounding.
func FromYen(yen decimal.Decimal) decimal.Decimal {
	return yen.Div(yenPerMan)
}

// FloorYenToMan converts a yen amount to man-yen, truncating to a whole
// man-yen. This is the rounding rule the tax tables use.
func FloorYenToMan(yen decimal.Decimal) decimal.Decimal {
	return yen.Div(yenPerMan).Floor()
}

// Round1 rounds to one decimal place, the display precision of the ledger.
func Round1(d decimal.Decimal) decimal.Decimal {
	return d.Round(1)
}

// Clamp restricts d to the closed interval [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// Min returns the smaller of two amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Monthly converts an annual amount to monthly.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(decimal.NewFromInt(12))
}

// Annual converts a monthly amount to annual.
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(decimal.NewFromInt(12))
}
