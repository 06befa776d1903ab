package http

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips markup from user text before it is echoed back.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer that allows no HTML at all.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean returns s with all tags removed and HTML special characters escaped.
func (s *Sanitizer) Clean(text string) string {
	return s.policy.Sanitize(text)
}
