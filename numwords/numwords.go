// Package numwords renders numbers as words.
//
// The core converter produces the English rendering used on vouchers and
// receipts, driven by a fixed scale table. Per-language converters cover
// Spanish and Arabic up to the thousands, and derived formatters handle
// ordinals, currency amounts, decimal fractions, Roman numerals and
// digit strings. Every function is pure: the word tables are immutable,
// so all of the package is safe for concurrent use.
package numwords

import (
	"math"
	"strconv"
	"strings"
)

// maxConvertible is the first magnitude the converters reject. Keeping
// half the int64 range in reserve leaves headroom for the arithmetic in
// the derived formatters.
const maxConvertible = math.MaxInt64 / 2

const wordMinus = "Minus"

// NumberToText converts an integer to its English words rendering.
//
// Parameters:
// - n: the number to convert.
//
// Returns:
// - the words for n, or an error when the magnitude is out of range.
func NumberToText(n int64) (string, error) {
	if n == 0 {
		return unitWords[0], nil
	}
	if n == math.MinInt64 {
		// negating the minimum value overflows
		return "", ConversionError{BaseErr: ErrInvalidInput, Op: "numberToText", Input: strconv.FormatInt(n, 10)}
	}
	value := n
	negative := value < 0
	if negative {
		value = -value
	}
	if value >= maxConvertible {
		return "", ConversionError{BaseErr: ErrValueTooLarge, Op: "numberToText", Input: strconv.FormatInt(n, 10)}
	}
	words, err := convertPositive(value)
	if err != nil {
		return "", err
	}
	if negative {
		words = wordMinus + " " + words
	}
	return words, nil
}

// convertPositive renders a value in [1, maxConvertible).
func convertPositive(value int64) (string, error) {
	if value < 1000 {
		return convertSmall(value)
	}
	return convertLarge(value)
}

// convertLarge renders values of one thousand and above by walking the
// scale table from the largest divisor down. The quotient of the first
// matching divisor is always below one thousand, so it goes through the
// small renderer; the remainder recurses through the walk. Scale groups
// are joined with plain spaces, never with "and".
func convertLarge(value int64) (string, error) {
	for _, scale := range scaleUnits {
		if value < scale.Divisor {
			continue
		}
		quotient := value / scale.Divisor
		remainder := value % scale.Divisor
		words := []string{}
		qw, err := convertSmall(quotient)
		if err != nil {
			return "", err
		}
		words = append(words, qw, scale.Name)
		if remainder > 0 {
			rest, err := convertPositive(remainder)
			if err != nil {
				return "", err
			}
			words = append(words, rest)
		}
		return strings.Join(words, " "), nil
	}
	// value >= 1000 always matches the last divisor
	return "", ConversionError{BaseErr: ErrInvalidInput, Op: "convertLarge", Input: strconv.FormatInt(value, 10)}
}

// convertSmall renders a value below one thousand. The "and" joiner
// appears here and only here, between the hundreds word and whatever
// follows it.
func convertSmall(value int64) (string, error) {
	if value <= 0 || value >= 1000 {
		return "", ConversionError{BaseErr: ErrInvalidInput, Op: "convertSmall", Input: strconv.FormatInt(value, 10)}
	}
	words := []string{}
	hundreds := value / 100
	rest := value % 100
	if hundreds > 0 {
		words = append(words, unitWords[hundreds], "Hundred")
	}
	if rest > 0 {
		if hundreds > 0 {
			words = append(words, "and")
		}
		words = append(words, convertTens(rest)...)
	}
	return strings.Join(words, " "), nil
}

// convertTens renders 1..99. Values below twenty come straight from the
// units table, which carries the irregular teens.
func convertTens(value int64) []string {
	if value < 20 {
		return []string{unitWords[value]}
	}
	tens := value / 10
	units := value % 10
	if units == 0 {
		return []string{tensWords[tens]}
	}
	return []string{tensWords[tens], unitWords[units]}
}
