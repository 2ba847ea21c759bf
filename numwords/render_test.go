package numwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mode  string
		lang  string
		want  string
	}{
		{"empty mode means words", "42", "", "", "Forty Two"},
		{"words uses the scale table", "1000", ModeWords, "", "One Million"},
		{"explicit english stays on the full range path", "1000", ModeWords, "English", "One Million"},
		{"words spanish", "21", ModeWords, "es", "Veinte y Uno"},
		{"words arabic", "11", ModeWords, "ar", "أحد عشر"},
		{"surrounding whitespace is trimmed", " 7 ", ModeWords, "", "Seven"},
		{"ordinal", "21", ModeOrdinal, "", "Twenty One (21st)"},
		{"currency", "2.45", ModeCurrency, "", "Two Dollars and Forty Five Cents"},
		{"decimal", "3.14", ModeDecimal, "", "Three point Fourteen"},
		{"roman", "1987", ModeRoman, "", "MCMLXXXVII"},
		{"digits keep the leading zero", "0501", ModeDigits, "", "Zero Five Zero One"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.input, tt.mode, tt.lang)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		mode    string
		lang    string
		wantErr error
	}{
		{"unparsable integer", "four", ModeWords, "", ErrInvalidInput},
		{"unparsable amount", "12,5", ModeCurrency, "", ErrInvalidInput},
		{"unknown language", "5", ModeWords, "fr", ErrUnsupportedLanguage},
		{"unknown mode", "5", "hex", "", ErrUnknownMode},
		{"roman zero", "0", ModeRoman, "", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.input, tt.mode, tt.lang)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolveLang(t *testing.T) {
	tag, err := ResolveLang("Spanish")
	assert.NoError(t, err)
	assert.Equal(t, LangSpanish, tag)

	tag, err = ResolveLang(" ARA ")
	assert.NoError(t, err)
	assert.Equal(t, LangArabic, tag)

	_, err = ResolveLang("fr")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestModes(t *testing.T) {
	assert.Equal(t,
		[]string{ModeWords, ModeOrdinal, ModeCurrency, ModeDecimal, ModeRoman, ModeDigits},
		Modes())
}
