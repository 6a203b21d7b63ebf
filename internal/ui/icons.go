package ui

// Pair icons
const (
	IconIdentical = "="
	IconSimilar   = "≈"
)

// UI icons for various UI elements
const (
	IconWarning = "⚠"
	IconSuccess = "✓"
	IconCursor  = "›"
)

// SwatchBlock is the text painted with a color's background
const SwatchBlock = "    "

// PairIcon returns the icon for a pair at the given distance
func PairIcon(distance float64) string {
	if distance == 0 {
		return IconIdentical
	}
	return IconSimilar
}
