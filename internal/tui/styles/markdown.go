package styles

import (
	"github.com/charmbracelet/glamour/v2"
)

// MarkdownRenderer returns a glamour renderer styled with the current theme.
func MarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStyles(CurrentTheme().S().Markdown),
		glamour.WithWordWrap(width),
	)
}
