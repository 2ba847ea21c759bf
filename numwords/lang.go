package numwords

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Languages lists the canonical tags of the supported languages.
func Languages() []string {
	tags := make([]string, 0, len(langTables))
	for _, t := range langTables {
		tags = append(tags, t.tag)
	}
	return tags
}

// ResolveLang maps a language selector to its canonical tag. Selectors
// are matched case insensitively; each language accepts its short code,
// its ISO-3 code and its English name.
func ResolveLang(selector string) (string, error) {
	table, err := resolveLang(selector)
	if err != nil {
		return "", err
	}
	return table.tag, nil
}

// resolveLang matches a language selector against the registry. Codes
// are matched case insensitively; each language accepts its short code,
// its ISO-3 code and its English name.
func resolveLang(code string) (*langTable, error) {
	want := strings.ToLower(strings.TrimSpace(code))
	for _, t := range langTables {
		for _, name := range t.names {
			if name == want {
				return t, nil
			}
		}
	}
	return nil, ConversionError{BaseErr: ErrUnsupportedLanguage, Op: "numberToTextLang", Input: code}
}

// NumberToTextLang converts an integer to words in the requested
// language. The per-language path renders thousands, hundreds and tens
// groups; it is exact for thousands multipliers up to 999 and is not
// meant for the millions, which only the English converter covers.
//
// Parameters:
// - n: the number to convert.
// - lang: a language selector accepted by the registry, e.g. "es",
//   "spa" or "Spanish".
//
// Returns:
// - the words for n, or an error when the language is unknown or the
//   magnitude is out of range.
func NumberToTextLang(n int64, lang string) (string, error) {
	table, err := resolveLang(lang)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return table.zero, nil
	}
	if n == math.MinInt64 {
		return "", ConversionError{BaseErr: ErrInvalidInput, Op: "numberToTextLang", Input: strconv.FormatInt(n, 10)}
	}
	value := n
	negative := value < 0
	if negative {
		value = -value
	}
	if value >= maxConvertible {
		return "", ConversionError{BaseErr: ErrValueTooLarge, Op: "numberToTextLang", Input: strconv.FormatInt(n, 10)}
	}
	words := table.render(value)
	if negative {
		words = table.minus + " " + words
	}
	return words, nil
}

// render walks the thousands, hundreds and tens groups of a positive
// value, delegating the grammar of each group to the language branch.
// In the Arabic branch every adjacent pair of groups is joined with the
// conjunction; the default branch only uses it between tens and units.
func (t *langTable) render(value int64) string {
	parts := []string{}
	if value >= 1000 {
		quotient := value / 1000
		value = value % 1000
		if quotient == 1 {
			// a bare thousand has no leading unit word
			parts = append(parts, t.thousand)
		} else {
			parts = append(parts, t.render(quotient), t.thousand)
		}
	}
	if value >= 100 {
		if len(parts) > 0 && t.grammar == grammarArabic {
			parts = append(parts, t.conjunction)
		}
		parts = append(parts, t.renderHundreds(value/100, value%100 != 0))
		value = value % 100
	}
	if value > 0 {
		if len(parts) > 0 && t.grammar == grammarArabic {
			parts = append(parts, t.conjunction)
		}
		parts = append(parts, t.renderTens(value)...)
	}
	return strings.Join(parts, " ")
}

// renderHundreds produces the hundreds group for a hundreds digit of
// 1..9. followed reports whether a tens or units group comes after it,
// which decides between the exact and joined one-hundred forms.
func (t *langTable) renderHundreds(hundreds int64, followed bool) string {
	if t.grammar == grammarArabic {
		switch hundreds {
		case 1:
			return t.hundredExact
		case 2:
			return t.hundredTwo
		default:
			return t.units[hundreds] + " " + t.hundredExact
		}
	}
	if hundreds == 1 {
		if followed {
			return t.hundredJoined
		}
		return t.hundredExact
	}
	return titleCase(strings.ToLower(t.units[hundreds]) + t.hundredSuffix)
}

// renderTens produces the words for 1..99. Values below twenty come
// straight from the units table.
func (t *langTable) renderTens(value int64) []string {
	if value < 20 {
		return []string{t.units[value]}
	}
	tens := value / 10
	units := value % 10
	if units == 0 {
		return []string{t.tens[tens]}
	}
	if t.grammar == grammarArabic {
		// units are spoken before the tens
		return []string{t.units[units], t.conjunction, t.tens[tens]}
	}
	if t.conjunction == "" {
		return []string{t.tens[tens], t.units[units]}
	}
	return []string{t.tens[tens], t.conjunction, t.units[units]}
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
