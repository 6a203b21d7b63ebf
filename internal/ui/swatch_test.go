package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/lunit-heesungyang/scss-color-similarity/internal/color"
)

func TestLabelColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#000000"), LabelColor(color.RGB{R: 255, G: 255, B: 255}))
	assert.Equal(t, lipgloss.Color("#000000"), LabelColor(color.RGB{R: 255, G: 255, B: 0}))
	assert.Equal(t, lipgloss.Color("#ffffff"), LabelColor(color.RGB{R: 0, G: 0, B: 0}))
	assert.Equal(t, lipgloss.Color("#ffffff"), LabelColor(color.RGB{R: 0, G: 0, B: 255}))
}

func TestSwatch_AsciiIsPlain(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)

	assert.False(t, HasColor(r))
	assert.Equal(t, "red", Swatch(r, color.RGB{R: 255}, "red"))
}

func TestSwatch_TrueColor(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)

	out := Swatch(r, color.RGB{R: 255}, "red")
	assert.True(t, HasColor(r))
	assert.Contains(t, out, "red")
	assert.NotEqual(t, "red", out)
}

func TestPairIcon(t *testing.T) {
	assert.Equal(t, IconIdentical, PairIcon(0))
	assert.Equal(t, IconSimilar, PairIcon(1.73))
}
