// Package report renders similarity results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/scss-color-similarity/internal/color"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/config"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/model"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/ui"
)

const (
	HeaderFound = "Colors that are nearly identical:"
	NoneFound   = "No nearly identical colors found."
)

// Report is the outcome of one run
type Report struct {
	File      string                `json:"file" yaml:"file"`
	Threshold float64               `json:"threshold" yaml:"threshold"`
	Variables int                   `json:"variables" yaml:"variables"`
	Pairs     []model.SimilarPair   `json:"pairs" yaml:"pairs"`
	Skipped   []model.ColorVariable `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Write encodes r to w in the given format
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case config.FormatText, "":
		return writeText(w, r)
	case config.FormatJSON:
		return writeJSON(w, r)
	case config.FormatYAML:
		return writeYAML(w, r)
	}
	return fmt.Errorf("unknown format %q", format)
}

// FormatPair renders a pair as "a and b (distance: D.DD)"
func FormatPair(p model.SimilarPair) string {
	return fmt.Sprintf("%s and %s (distance: %.2f)", p.A.Name, p.B.Name, p.Distance)
}

func writeText(w io.Writer, r Report) error {
	re := lipgloss.NewRenderer(w)
	header := re.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	clean := re.NewStyle().Foreground(ui.ColorSuccess)

	var sb strings.Builder
	if len(r.Pairs) == 0 {
		sb.WriteString(clean.Render(NoneFound))
		sb.WriteString("\n")
	} else {
		sb.WriteString(header.Render(HeaderFound))
		sb.WriteString("\n")
		for _, p := range r.Pairs {
			sb.WriteString(FormatPair(p))
			if ui.HasColor(re) {
				sb.WriteString("  ")
				sb.WriteString(swatches(re, p))
			}
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func swatches(re *lipgloss.Renderer, p model.SimilarPair) string {
	a, errA := color.HexToRGB(p.A.Hex)
	b, errB := color.HexToRGB(p.B.Hex)
	if errA != nil || errB != nil {
		return ""
	}
	return ui.Swatch(re, a, ui.SwatchBlock) + ui.Swatch(re, b, ui.SwatchBlock)
}

// rounded returns a copy of r with distances rounded to two decimals
func rounded(r Report) Report {
	out := r
	out.Pairs = make([]model.SimilarPair, len(r.Pairs))
	for i, p := range r.Pairs {
		p.Distance = math.Round(p.Distance*100) / 100
		out.Pairs[i] = p
	}
	return out
}

func writeJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rounded(r)); err != nil {
		return fmt.Errorf("encoding json report: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rounded(r)); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return enc.Close()
}
