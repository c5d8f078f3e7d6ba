package ui

import (
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
)

// renderMarkdownAsync renders weather markup for the terminal off the update loop
func (a AppView) renderMarkdownAsync(content string) tea.Cmd {
	width := a.width - 8
	if width < 20 {
		width = 20
	}

	return func() tea.Msg {
		debugf("Starting async markdown render - length: %d chars", len(content))
		startTime := time.Now()

		// Keep plain URLs as plain text so the terminal can detect them
		ext := markdown.Extensions() &^ parser.Autolink
		p := parser.NewWithExtensions(ext)
		r := markdown.NewRenderer(width, 0)
		doc := p.Parse([]byte(content))
		rendered := gomarkdown.Render(doc, r)

		debugf("Markdown rendered in %v", time.Since(startTime))

		return markdownRenderedMsg{
			Source:   content,
			Rendered: string(rendered),
		}
	}
}
