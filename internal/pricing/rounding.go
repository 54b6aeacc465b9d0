package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/avelara/storefront-pricing/internal/model"
)

// zeroDecimalCurrencies have no minor unit at all.
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "ISK": true,
	"JPY": true, "KMF": true, "KRW": true, "MGA": true, "PYG": true,
	"RWF": true, "UGX": true, "VND": true, "VUV": true, "XAF": true,
	"XOF": true, "XPF": true,
}

// threeDecimalCurrencies use a thousandth minor unit.
var threeDecimalCurrencies = map[string]bool{
	"BHD": true, "IQD": true, "JOD": true, "KWD": true,
	"LYD": true, "OMR": true, "TND": true,
}

// MinorUnitDigits returns the number of minor-unit digits for a currency.
func MinorUnitDigits(currency string) int {
	if zeroDecimalCurrencies[currency] {
		return 0
	}
	if threeDecimalCurrencies[currency] {
		return 3
	}
	return 2
}

// Round applies the rounding mode to an already-converted amount.
//
//	whole -> nearest integer major unit, ties away from zero
//	charm -> floor, then the currency's charm ending (.99 for two-decimal
//	         currencies, a trailing 9 digit for zero-decimal ones)
//	none  -> the currency's natural minor-unit precision
//
// The result of a positive amount is never zero: anything that would round
// to zero becomes the smallest sellable value for the mode instead. Round
// is idempotent for every mode.
func Round(amount float64, mode model.RoundingMode, minorDigits int) float64 {
	if amount <= 0 {
		return 0
	}
	d := decimal.NewFromFloat(amount)

	var out decimal.Decimal
	switch mode {
	case model.RoundWhole:
		out = d.Round(0)
		if out.IsZero() {
			out = decimal.NewFromInt(1)
		}
	case model.RoundCharm:
		out = charm(d, minorDigits)
	default:
		out = d.Round(int32(minorDigits))
		if out.IsZero() {
			out = decimal.New(1, int32(-minorDigits))
		}
	}
	f, _ := out.Float64()
	return f
}

// charm builds the charm-priced value at or above floor(d). For currencies
// with minor units the ending is all-nines below the floor (10 -> 10.99);
// for zero-decimal currencies the final integer digit is forced to 9,
// bumping up a ten when the floor is already past that ending (1234 -> 1239,
// 1230 -> 1239, 1239 -> 1239).
func charm(d decimal.Decimal, minorDigits int) decimal.Decimal {
	floor := d.Floor()
	if minorDigits > 0 {
		// floor + 0.99 / 0.999, always above the floor itself.
		ending := decimal.New(1, int32(minorDigits)).Sub(decimal.NewFromInt(1)) // 99 or 999
		return floor.Add(ending.Shift(int32(-minorDigits)))
	}

	ten := decimal.NewFromInt(10)
	candidate := floor.Div(ten).Floor().Mul(ten).Add(decimal.NewFromInt(9))
	if candidate.LessThan(floor) {
		candidate = candidate.Add(ten)
	}
	return candidate
}
