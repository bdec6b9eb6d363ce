package textutil

import (
	"regexp"
	"strings"
)

var (
	scriptPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	stylePattern  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
)

// Sanitize trims surrounding whitespace and strips markup so text forwarded
// downstream, or rendered later, carries no script or tag content.
func Sanitize(text string) string {
	text = scriptPattern.ReplaceAllString(text, "")
	text = stylePattern.ReplaceAllString(text, "")
	text = tagPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
