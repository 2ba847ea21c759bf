package numwords

import (
	"math"
	"strconv"
)

// maxCurrencyAmount bounds amounts so that the cent arithmetic below
// stays inside the converter's int64 range.
const maxCurrencyAmount = math.MaxInt64 / 2 / 100

// ToCurrency renders a dollar amount as words, e.g. 2.45 becomes
// "Two Dollars and Forty Five Cents". The amount is rounded to whole
// cents, half away from zero, and the cents group is omitted when it
// rounds to nothing.
func ToCurrency(amount float64) (string, error) {
	input := strconv.FormatFloat(amount, 'f', -1, 64)
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ConversionError{BaseErr: ErrInvalidInput, Op: "toCurrency", Input: input}
	}
	if math.Abs(amount) >= maxCurrencyAmount {
		return "", ConversionError{BaseErr: ErrValueTooLarge, Op: "toCurrency", Input: input}
	}
	cents := int64(math.Round(amount * 100))
	dollars := cents / 100
	centPart := cents % 100
	if centPart < 0 {
		centPart = -centPart
	}
	words, err := NumberToText(dollars)
	if err != nil {
		return "", err
	}
	out := words + " " + pluralize("Dollar", dollars)
	if centPart != 0 {
		centWords, err := NumberToText(centPart)
		if err != nil {
			return "", err
		}
		out += " and " + centWords + " " + pluralize("Cent", centPart)
	}
	return out, nil
}

// pluralize appends "s" unless the magnitude of n is exactly one.
func pluralize(unit string, n int64) string {
	if n == 1 || n == -1 {
		return unit
	}
	return unit + "s"
}
