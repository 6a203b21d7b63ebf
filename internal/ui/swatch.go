package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/lunit-heesungyang/scss-color-similarity/internal/color"
)

func toColorful(c color.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// LabelColor picks black or white text, whichever reads better on c
func LabelColor(c color.RGB) lipgloss.Color {
	l, _, _ := toColorful(c).Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// Swatch paints label on a background of c. Renderers without color
// support get the label back unchanged.
func Swatch(r *lipgloss.Renderer, c color.RGB, label string) string {
	if r.ColorProfile() == termenv.Ascii {
		return label
	}
	return r.NewStyle().
		Background(lipgloss.Color(toColorful(c).Hex())).
		Foreground(LabelColor(c)).
		Render(label)
}

// HasColor reports whether r emits color sequences
func HasColor(r *lipgloss.Renderer) bool {
	return r.ColorProfile() != termenv.Ascii
}
