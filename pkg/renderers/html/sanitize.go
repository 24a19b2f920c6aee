package html

import (
	stdhtml "html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// StripMarkup removes every tag from s and returns plain text. The template
// layer escapes output, so entities produced by the sanitizer are decoded.
func StripMarkup(s string) string {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(stdhtml.UnescapeString(strictPolicy.Sanitize(s)))
}
