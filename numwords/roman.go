package numwords

import (
	"strconv"
	"strings"
)

// romanNumerals is ordered from the largest value down and includes the
// subtractive pairs, so a greedy walk produces the canonical form.
var romanNumerals = []struct {
	Value  int64
	Symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman renders n in Roman numerals. Only 1 through 3999 can be
// expressed; anything else is rejected.
func ToRoman(n int64) (string, error) {
	if n <= 0 || n > 3999 {
		return "", ConversionError{BaseErr: ErrInvalidInput, Op: "toRoman", Input: strconv.FormatInt(n, 10)}
	}
	var sb strings.Builder
	for _, numeral := range romanNumerals {
		for n >= numeral.Value {
			sb.WriteString(numeral.Symbol)
			n -= numeral.Value
		}
	}
	return sb.String(), nil
}
