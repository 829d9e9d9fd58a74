package enums

import "fmt"

// SubstitutionPreference describes how an out-of-stock line should be handled
// at fulfillment. Stored on every cart line; not enforced by any flow yet.
type SubstitutionPreference string

const (
	SubstitutionRefund         SubstitutionPreference = "REFUND"
	SubstitutionReplaceNearest SubstitutionPreference = "REPLACE_NEAREST"
	SubstitutionContact        SubstitutionPreference = "CONTACT"
)

var validSubstitutionPreferences = []SubstitutionPreference{
	SubstitutionRefund,
	SubstitutionReplaceNearest,
	SubstitutionContact,
}

// IsValid checks whether the given preference matches the canonical enum.
func (s SubstitutionPreference) IsValid() bool {
	for _, candidate := range validSubstitutionPreferences {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSubstitutionPreference converts raw strings into SubstitutionPreference.
func ParseSubstitutionPreference(value string) (SubstitutionPreference, error) {
	for _, candidate := range validSubstitutionPreferences {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid substitution preference %q", value)
}
