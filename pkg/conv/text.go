package conv

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags
	textPolicy = bluemonday.UGCPolicy()
)

// MarkdownToText flattens markdown to plain text so grounding prompts carry
// content, not markup.
func MarkdownToText(md []byte) (string, error) {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	return HTMLToText(string(unsafeHTML))
}

// HTMLToText sanitizes untrusted HTML and converts the remainder to text.
func HTMLToText(src string) (string, error) {
	sanitized := textPolicy.Sanitize(src)

	return html2text.FromString(sanitized, html2text.Options{
		OmitLinks:    true,
		PrettyTables: true,
	})
}
