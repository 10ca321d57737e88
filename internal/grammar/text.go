package grammar

import (
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	// a pipe that is not inside an unclosed [[ link
	descriptionPipe = regexp2.MustCompile(`\|(?<!\[\[[^\]]*\|)`, regexp2.None)

	wikiLink = regexp2.MustCompile(`\[\[([^\]|]+)(?:\|([^\]]+))?\]\]`, regexp2.None)
)

// SplitDescription splits text at the first pipe outside a wiki link.
// Both halves are trimmed.
func SplitDescription(text string) (content, description string) {
	m, err := descriptionPipe.FindStringMatch(text)
	if err != nil || m == nil {
		return strings.TrimSpace(text), ""
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:m.Index])),
		strings.TrimSpace(string(runes[m.Index+m.Length:]))
}

// ExtractLink returns the target of the first [[target]] or
// [[target|alias]] link in text.
func ExtractLink(text string) string {
	if text == "" {
		return ""
	}
	m, err := wikiLink.FindStringMatch(text)
	if err != nil || m == nil {
		return ""
	}
	return strings.TrimSpace(m.GroupByNumber(1).String())
}
