// Package sanitize strips the common script-injection vectors out of
// user-submitted text before it is stored.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	scriptTagRe    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	javascriptRe   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// Clean removes script tags, javascript: URLs and inline event handlers,
// then trims surrounding whitespace.
func Clean(input string) string {
	out := scriptTagRe.ReplaceAllString(input, "")
	out = javascriptRe.ReplaceAllString(out, "")
	out = eventHandlerRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}
