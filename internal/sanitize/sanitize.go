// Package sanitize strips unsafe markup from user-supplied free text
// before it reaches storage.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans a single free-text field.
type Sanitizer interface {
	Sanitize(s string) string
}

// HTMLSanitizer removes all HTML markup, keeping only the text content.
// Forum games and comments are plain text; formatting is a presentation
// concern of the excluded web layer.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer returns a strict-policy sanitizer.
func NewHTMLSanitizer() *HTMLSanitizer {
	return &HTMLSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize strips markup and trims surrounding whitespace.
func (h *HTMLSanitizer) Sanitize(s string) string {
	return strings.TrimSpace(h.policy.Sanitize(s))
}
