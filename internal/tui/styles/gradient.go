package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders text bold with a horizontal gradient,
// one color per grapheme cluster.
func ApplyBoldGradient(text string, from, to color.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	var out strings.Builder
	for i, c := range blendColors(len(clusters), from, to) {
		out.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(clusters[i]))
	}
	return out.String()
}

// RenderThemeGradient renders text with the current theme's brand gradient.
func RenderThemeGradient(text string) string {
	t := CurrentTheme()
	return ApplyBoldGradient(text, t.Primary, t.Secondary)
}

// blendColors interpolates in HCL space.
func blendColors(steps int, from, to color.Color) []color.Color {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []color.Color{from}
	}

	c1, _ := colorful.MakeColor(from)
	c2, _ := colorful.MakeColor(to)

	colors := make([]color.Color, steps)
	for i := range steps {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(steps-1)).Clamped()
	}
	return colors
}
