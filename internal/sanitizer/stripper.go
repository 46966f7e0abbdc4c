package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLStripperer removes markup from untrusted text.
type HTMLStripperer interface {
	StripHTML(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

var _ HTMLStripperer = (*HTMLStripper)(nil)

// NewHTMLStripper return a new instance of blue monday strict policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

// StripHTML drops every tag and returns plain text. bluemonday escapes the
// text it keeps, so entities are decoded back for JSON consumers.
func (hs *HTMLStripper) StripHTML(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(hs.bm.Sanitize(s)))
}
