package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank("   "))
	assert.True(t, NotBlank("Norway"))
}

func TestMaxRunes(t *testing.T) {
	assert.True(t, MaxRunes("Türkiye", 7))
	assert.False(t, MaxRunes("Türkiye", 6))
}

func TestPrintable(t *testing.T) {
	assert.True(t, Printable("New Zealand"))
	assert.False(t, Printable("bad\x00name"))
}

func TestIn(t *testing.T) {
	assert.True(t, In("male", "All", "male", "female"))
	assert.False(t, In("other", "All", "male", "female"))
}

func TestNoDuplicates(t *testing.T) {
	assert.True(t, NoDuplicates([]string{"a", "b"}))
	assert.False(t, NoDuplicates([]string{"a", "b", "a"}))
	assert.True(t, NoDuplicates([]string{}))
}

func TestCountryName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "ok", value: "United States", valid: true},
		{name: "blank", value: "  ", valid: false},
		{name: "too long", value: strings.Repeat("x", MaxCountryNameRunes+1), valid: false},
		{name: "control char", value: "Fra\nnce", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			CountryName(v, "country", tt.value)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}
