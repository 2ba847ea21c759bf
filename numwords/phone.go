package numwords

import (
	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is the region used to parse phone numbers that carry no
// international prefix.
const DefaultPhoneRegion = "IN"

// SpellPhone parses number as a phone number and spells the digits of its
// national significant number, one word per digit. Numbers without an
// international prefix are parsed for region; an empty region falls back to
// DefaultPhoneRegion. Numbers that do not parse or are not valid for their
// region yield ErrInvalidInput.
func SpellPhone(number, region string) (string, error) {
	if region == "" {
		region = DefaultPhoneRegion
	}

	num, err := phonenumbers.Parse(number, region)
	if err != nil {
		return "", ConversionError{BaseErr: ErrInvalidInput, Op: "spellPhone", Input: number}
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", ConversionError{BaseErr: ErrInvalidInput, Op: "spellPhone", Input: number}
	}

	return DigitsToText(phonenumbers.GetNationalSignificantNumber(num))
}
