package cue

import (
	"regexp"
	"strings"
)

var (
	// inline voice and styling spans such as <c.japanese>
	openTagRegex  = regexp.MustCompile(`<[0-9a-zA-Z.,:_\-]+>`)
	closeTagRegex = regexp.MustCompile(`</[0-9a-zA-Z.,:_\-]+>`)
)

// named escapes are deleted outright rather than decoded to the
// characters they represent
var escapesToPrune = []string{
	"&amp;",
	"&lt;",
	"&gt;",
	"&lrm;",
	"&rlm;",
	"&nbsp;",
}

// strips inline markup tags, one leading dialogue dash, and the named
// escapes from a single text line; total, and idempotent on a line
// that is already clean
func Sanitize(line string) string {
	text := openTagRegex.ReplaceAllString(line, "")
	text = closeTagRegex.ReplaceAllString(text, "")
	text = strings.TrimPrefix(text, "- ")
	for _, es := range escapesToPrune {
		text = strings.ReplaceAll(text, es, "")
	}
	return text
}
