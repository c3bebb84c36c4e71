package extract

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// ParseClipboard splits pasted text into a source URL and a title hint.
// The hint is the free text preceding the first URL, which share sheets
// commonly place there. Both are empty when the text holds no URL.
func ParseClipboard(text string) (url, titleHint string) {
	loc := urlPattern.FindStringIndex(text)
	if loc == nil {
		return "", ""
	}
	return text[loc[0]:loc[1]], strings.TrimSpace(text[:loc[0]])
}
