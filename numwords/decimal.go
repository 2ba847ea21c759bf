package numwords

import (
	"math"
	"strconv"
)

// DecimalToText renders a decimal value as integer and fraction words
// joined with "point". The fraction is rounded to two digits and read as
// a cardinal, not digit by digit: 3.14 becomes "Three point Fourteen"
// and 0.05 becomes "Zero point Five".
func DecimalToText(value float64) (string, error) {
	input := strconv.FormatFloat(value, 'f', -1, 64)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", ConversionError{BaseErr: ErrInvalidInput, Op: "decimalToText", Input: input}
	}
	if math.Abs(value) >= maxConvertible {
		return "", ConversionError{BaseErr: ErrValueTooLarge, Op: "decimalToText", Input: input}
	}
	intPart := int64(value)
	fraction := int64(math.Round(math.Abs(value-float64(intPart)) * 100))
	if fraction >= 100 {
		// the fraction rounded through to the next whole number
		fraction = 0
		if value < 0 {
			intPart--
		} else {
			intPart++
		}
	}
	intWords, err := NumberToText(intPart)
	if err != nil {
		return "", err
	}
	if value < 0 && intPart == 0 {
		// the sign lives in the fraction, e.g. -0.25
		intWords = wordMinus + " " + intWords
	}
	fracWords, err := NumberToText(fraction)
	if err != nil {
		return "", err
	}
	return intWords + " point " + fracWords, nil
}
