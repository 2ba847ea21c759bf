package numwords

import "fmt"

// ToOrdinal renders n as English words followed by the numeric ordinal
// in parentheses, e.g. "Twenty One (21st)".
func ToOrdinal(n int64) (string, error) {
	words, err := NumberToText(n)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%d%s)", words, n, ordinalSuffix(n)), nil
}

// ordinalSuffix picks st/nd/rd/th from the final two digits. Eleven
// through thirteen take "th" regardless of the last digit.
func ordinalSuffix(n int64) string {
	lastTwo := n % 100
	if lastTwo < 0 {
		lastTwo = -lastTwo
	}
	if lastTwo >= 11 && lastTwo <= 13 {
		return "th"
	}
	switch lastTwo % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
