package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxCountryNameRunes bounds country names accepted from clients.
const MaxCountryNameRunes = 100

// NotBlank returns true if a string is not empty or contains only whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MaxRunes returns true if a string is less than or equal to a maximum number of n
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// Printable returns true if every rune is printable.
func Printable(value string) bool {
	for _, r := range value {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// NoDuplicates returns true if all the values in a slice are unique.
func NoDuplicates[T comparable](values []T) bool {
	seen := make(map[T]struct{}, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			return false
		}
		seen[value] = struct{}{}
	}
	return true
}

// CountryName checks a client supplied country name.
func CountryName(v *Validator, key, value string) {
	v.Check(NotBlank(value), key, "must be provided")
	v.Check(MaxRunes(value, MaxCountryNameRunes), key, "must not be more than 100 characters")
	v.Check(Printable(value), key, "must contain printable characters only")
}
