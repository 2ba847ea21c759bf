package numwords_test

import (
	"fmt"

	"github.com/remiges-tech/sankhya/numwords"
)

func ExampleNumberToText() {
	words, _ := numwords.NumberToText(1_234_567)
	fmt.Println(words)
	// Output: One Billion Two Hundred and Thirty Four Million Five Hundred and Sixty Seven
}

func ExampleNumberToTextLang() {
	words, _ := numwords.NumberToTextLang(21, "es")
	fmt.Println(words)
	// Output: Veinte y Uno
}

func ExampleToOrdinal() {
	words, _ := numwords.ToOrdinal(21)
	fmt.Println(words)
	// Output: Twenty One (21st)
}

func ExampleToCurrency() {
	words, _ := numwords.ToCurrency(2.45)
	fmt.Println(words)
	// Output: Two Dollars and Forty Five Cents
}

func ExampleToRoman() {
	numeral, _ := numwords.ToRoman(49)
	fmt.Println(numeral)
	// Output: XLIX
}
