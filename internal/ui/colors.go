package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for consistent styling across the report and the browser
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("212") // Pink/magenta for titles and highlights
	ColorSecondary = lipgloss.Color("62")  // Blue for selection and borders

	// Text colors
	ColorText      = lipgloss.Color("252") // Light gray for variable names
	ColorTextLight = lipgloss.Color("230") // Very light for selected items

	// Border and muted colors
	ColorBorder = lipgloss.Color("240") // Gray for borders and footers
	ColorMuted  = lipgloss.Color("241") // Distances and hints

	// Semantic colors
	ColorSuccess = lipgloss.Color("46")  // Green for a clean palette
	ColorError   = lipgloss.Color("196") // Red for identical colors
	ColorWarning = lipgloss.Color("214") // Orange for near duplicates
)
