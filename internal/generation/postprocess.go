package generation

import (
	"regexp"
	"strings"
)

const (
	// MaxDescriptionLength is the longest description, in characters, that
	// PostProcess returns.
	MaxDescriptionLength = 200

	truncateLength  = 197
	minWordBoundary = 180
	ellipsis        = "..."
)

// labelPattern matches one leading label such as "Meta Description:",
// "**Description:**" or "Meta description (158 chars):".
var labelPattern = regexp.MustCompile(`(?i)^(?:\*\*)?(?:meta\s+)?description[^:\n]*:(?:\*\*)?\s*`)

// PostProcessor cleans up a raw model answer.
type PostProcessor interface {
	PostProcess(raw string) string
}

// DefaultPostProcessor strips quotes and labels the model tends to add and
// enforces MaxDescriptionLength.
type DefaultPostProcessor struct{}

var _ PostProcessor = DefaultPostProcessor{}

// PostProcess trims the answer, removes one layer of surrounding quotes and
// a single leading label, then truncates it to MaxDescriptionLength. Long
// answers are cut at a word boundary past 180 characters when one exists
// and always end in "...". The result may be empty.
func (DefaultPostProcessor) PostProcess(raw string) string {
	s := strings.TrimSpace(raw)
	s = trimQuotes(s)
	s = labelPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return truncate(s)
}

func trimQuotes(s string) string {
	if s != "" && isQuote(s[0]) {
		s = s[1:]
	}
	if n := len(s); n > 0 && isQuote(s[n-1]) {
		s = s[:n-1]
	}
	return s
}

func isQuote(b byte) bool {
	return b == '"' || b == '\''
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxDescriptionLength {
		return s
	}

	cut := runes[:truncateLength]
	for i := len(cut) - 1; i > minWordBoundary; i-- {
		if cut[i] == ' ' {
			cut = cut[:i]
			break
		}
	}

	return string(cut) + ellipsis
}
