package formatter

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var ErrInvalidPhone = errors.New("phone number is not valid for its region")

// FormatPhone formats a phone number to E164 format
func FormatPhone(phone, countryCode string) (string, error) {
	num, err := phonenumbers.Parse(phone, strings.ToUpper(countryCode))
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// NormalizePhone returns the E164 form of phone when it is a valid number
// for region, and the trimmed input otherwise.
func NormalizePhone(phone, region string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	formatted, err := FormatPhone(phone, region)
	if err != nil {
		return phone
	}
	return formatted
}
