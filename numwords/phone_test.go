package numwords

import (
	"errors"
	"testing"
)

func TestSpellPhone(t *testing.T) {
	tests := []struct {
		name   string
		number string
		region string
		want   string
	}{
		{
			name:   "indian mobile with country code",
			number: "+91 98765 43210",
			region: "",
			want:   "Nine Eight Seven Six Five Four Three Two One Zero",
		},
		{
			name:   "indian mobile default region",
			number: "98765 43210",
			region: "",
			want:   "Nine Eight Seven Six Five Four Three Two One Zero",
		},
		{
			name:   "us number explicit region",
			number: "650-253-0000",
			region: "US",
			want:   "Six Five Zero Two Five Three Zero Zero Zero Zero",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SpellPhone(tc.number, tc.region)
			if err != nil {
				t.Fatalf("SpellPhone(%q, %q) returned error: %v", tc.number, tc.region, err)
			}
			if got != tc.want {
				t.Errorf("SpellPhone(%q, %q) = %q, want %q", tc.number, tc.region, got, tc.want)
			}
		})
	}
}

func TestSpellPhoneInvalid(t *testing.T) {
	tests := []struct {
		name   string
		number string
		region string
	}{
		{name: "too short", number: "12", region: "IN"},
		{name: "not a number", number: "abc", region: "IN"},
		{name: "empty", number: "", region: "IN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SpellPhone(tc.number, tc.region)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("SpellPhone(%q, %q) error = %v, want ErrInvalidInput", tc.number, tc.region, err)
			}
		})
	}
}
