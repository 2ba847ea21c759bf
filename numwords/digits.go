package numwords

import "strings"

// DigitsToText spells a digit string one word per digit: "0501" becomes
// "Zero Five Zero One". Spaces and hyphens between digits are ignored,
// so formatted account and phone numbers can be passed as they are.
func DigitsToText(s string) (string, error) {
	words := []string{}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			words = append(words, unitWords[r-'0'])
		case r == ' ' || r == '-':
			// separator, skip
		default:
			return "", ConversionError{BaseErr: ErrInvalidInput, Op: "digitsToText", Input: s}
		}
	}
	if len(words) == 0 {
		return "", ConversionError{BaseErr: ErrInvalidInput, Op: "digitsToText", Input: s}
	}
	return strings.Join(words, " "), nil
}
