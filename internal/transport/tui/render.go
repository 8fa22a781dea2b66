package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

func newRenderer(width int) *glamour.TermRenderer {
	if width < 10 {
		width = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r
}

// renderMarkdown pretty-prints assistant markdown; on any renderer trouble
// the raw content is shown instead.
func (m model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n") + "\n"
}
