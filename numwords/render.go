package numwords

import (
	"strconv"
	"strings"
)

// Conversion modes understood by Render. Each mode names one of the
// converters in this package and decides how the textual input is
// parsed before conversion.
const (
	ModeWords    = "words"
	ModeOrdinal  = "ordinal"
	ModeCurrency = "currency"
	ModeDecimal  = "decimal"
	ModeRoman    = "roman"
	ModeDigits   = "digits"
)

// Modes lists the conversion modes understood by Render.
func Modes() []string {
	return []string{ModeWords, ModeOrdinal, ModeCurrency, ModeDecimal, ModeRoman, ModeDigits}
}

// Render parses input according to mode and converts it to words. An
// empty mode means ModeWords. Only ModeWords honors lang: an empty lang
// or any English selector picks the full-range English converter, other
// languages go through the per-language path. The remaining modes
// always render in English and ignore lang.
func Render(input, mode, lang string) (string, error) {
	switch mode {
	case "", ModeWords:
		n, err := parseInt64(input, "render")
		if err != nil {
			return "", err
		}
		if lang == "" {
			return NumberToText(n)
		}
		tag, err := ResolveLang(lang)
		if err != nil {
			return "", err
		}
		if tag == LangEnglish {
			return NumberToText(n)
		}
		return NumberToTextLang(n, tag)
	case ModeOrdinal:
		n, err := parseInt64(input, "toOrdinal")
		if err != nil {
			return "", err
		}
		return ToOrdinal(n)
	case ModeCurrency:
		amount, err := parseFloat64(input, "toCurrency")
		if err != nil {
			return "", err
		}
		return ToCurrency(amount)
	case ModeDecimal:
		value, err := parseFloat64(input, "decimalToText")
		if err != nil {
			return "", err
		}
		return DecimalToText(value)
	case ModeRoman:
		n, err := parseInt64(input, "toRoman")
		if err != nil {
			return "", err
		}
		return ToRoman(n)
	case ModeDigits:
		return DigitsToText(strings.TrimSpace(input))
	default:
		return "", ConversionError{BaseErr: ErrUnknownMode, Op: "render", Input: mode}
	}
}

func parseInt64(input, op string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return 0, ConversionError{BaseErr: ErrInvalidInput, Op: op, Input: input}
	}
	return n, nil
}

func parseFloat64(input, op string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, ConversionError{BaseErr: ErrInvalidInput, Op: op, Input: input}
	}
	return f, nil
}
