package markdown

import (
	"bytes"
	"strings"
	"sync"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// rendererInstance is initialized once and reused. The renderer configuration
// (extensions, options) never changes and a goldmark.Markdown is safe to
// share; each Convert call creates its own parse state.
var (
	rendererInstance goldmark.Markdown
	rendererOnce     sync.Once
)

func getRenderer() goldmark.Markdown {
	rendererOnce.Do(func() {
		rendererInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithUnsafe(),
			),
		)
	})
	return rendererInstance
}

// ToHTML renders Markdown to HTML with soft line breaks rendered as <br> and
// GFM extended syntax (tables, strikethrough) enabled.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := getRenderer().Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToMarkdown converts rich-text/HTML content to Markdown-flavored plain text.
// Structure (paragraphs, emphasis, links) survives well enough for round-trip
// readability; byte-exact fidelity is not a goal.
func ToMarkdown(htmlContent string) (string, error) {
	return htmltomarkdown.ConvertString(htmlContent)
}

// NormalizeNewlines folds CRLF line endings to LF.
func NormalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
