package markdown

import (
	"regexp"
	"strings"
)

var (
	brRunRe      = regexp.MustCompile(`(?i)(<br\s*/?>(\s*)){2,}`)
	paraBreakRe  = regexp.MustCompile(`</p>\s*<p>`)
	emptyParaRe  = regexp.MustCompile(`<p>\s*</p>`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// SanitizeForEditor post-processes rendered HTML into the form the ticket
// editor accepts. The passes run in order:
//  1. collapse runs of two or more <br> (whitespace-tolerant) into <br><br>
//  2. put a single <br> between adjacent paragraphs
//  3. replace whitespace-only paragraphs with a single <br>
//  4. strip literal newlines
//  5. trim surrounding whitespace
func SanitizeForEditor(htmlContent string) string {
	out := brRunRe.ReplaceAllString(htmlContent, "<br><br>")
	out = paraBreakRe.ReplaceAllString(out, "</p><br><p>")
	out = emptyParaRe.ReplaceAllString(out, "<br>")
	out = strings.ReplaceAll(out, "\n", "")
	return strings.TrimSpace(out)
}

// FallbackFormat is the degraded path used when Markdown rendering fails:
// collapse 3+ consecutive newlines to exactly 2, then turn the remaining
// newlines into <br> elements. It cannot fail; only formatting quality drops.
func FallbackFormat(text string) string {
	out := newlineRunRe.ReplaceAllString(text, "\n\n")
	return strings.ReplaceAll(out, "\n", "<br>")
}
