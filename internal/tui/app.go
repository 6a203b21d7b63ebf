package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lunit-heesungyang/scss-color-similarity/internal/color"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/model"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/report"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/ui"
)

// Model is the Bubble Tea model for browsing similar pairs
type Model struct {
	keys   KeyMap
	styles Styles
	help   help.Model

	// Window dimensions
	width  int
	height int

	// Report state
	rep      report.Report
	selected int

	statusMsg string
}

// New creates a browser over an already computed report
func New(rep report.Report) Model {
	m := Model{
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
		rep:    rep,
	}
	if n := len(rep.Skipped); n > 0 {
		m.statusMsg = fmt.Sprintf("%s %d variable(s) skipped: invalid color", ui.IconWarning, n)
	}
	return m
}

// Run starts the browser on the alternate screen and blocks until it exits
func Run(rep report.Report) error {
	p := tea.NewProgram(New(rep), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the pair under the cursor
func (m Model) Selected() (model.SimilarPair, bool) {
	if m.selected >= 0 && m.selected < len(m.rep.Pairs) {
		return m.rep.Pairs[m.selected], true
	}
	return model.SimilarPair{}, false
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.rep.Pairs)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Top):
		m.selected = 0

	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(0, len(m.rep.Pairs)-1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	footer := m.styles.Footer.Render(m.help.View(m.keys))
	status := m.styles.StatusBar.Render(m.statusMsg)

	// header(1) + footer + status(1)
	contentHeight := m.height - 2 - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}
	listWidth := m.width / 2
	previewWidth := m.width - listWidth

	header := m.styles.Header.Render(
		fmt.Sprintf("%s: %d similar pair(s) among %d variables [threshold %g]",
			m.rep.File, len(m.rep.Pairs), m.rep.Variables, m.rep.Threshold),
	)

	listPanel := m.styles.ListPanel.
		Width(listWidth).
		Render(m.renderList(listWidth-2, contentHeight))

	previewPanel := m.styles.PreviewPanel.
		Width(previewWidth).
		Render(m.renderPreview(previewWidth-4, contentHeight))

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		footer,
		status,
	)

	// Force exact terminal height to prevent scrolling issues
	lines := strings.Split(view, "\n")
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderList(width, height int) string {
	var lines []string

	if len(m.rep.Pairs) == 0 {
		lines = append(lines, fmt.Sprintf("%s %s", ui.IconSuccess, report.NoneFound))
	} else {
		// keep the cursor visible
		offset := 0
		if m.selected >= height {
			offset = m.selected - height + 1
		}

		for i := offset; i < len(m.rep.Pairs) && i-offset < height; i++ {
			p := m.rep.Pairs[i]

			cursor := " "
			if i == m.selected {
				cursor = ui.IconCursor
			}
			line := fmt.Sprintf("%s %s %s", cursor, ui.PairIcon(p.Distance), report.FormatPair(p))

			if runewidth.StringWidth(line) > width {
				line = runewidth.Truncate(line, width, "...")
			}

			switch {
			case i == m.selected:
				line = m.styles.SelectedItem.Render(line)
			case p.Distance == 0:
				line = m.styles.IdenticalItem.Render(line)
			default:
				line = m.styles.NormalItem.Render(line)
			}

			lines = append(lines, line)
		}
	}

	// Pad to fill height to prevent layout shifts
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderPreview(width, height int) string {
	var lines []string

	p, ok := m.Selected()
	if !ok {
		lines = append(lines, "No pair selected")
	} else {
		lines = append(lines, m.styles.PreviewTitle.Render(
			fmt.Sprintf("%s  %s", ui.PairIcon(p.Distance), report.FormatPair(p)),
		))
		lines = append(lines, strings.Repeat("─", min(width, 40)))
		lines = append(lines, m.renderVariable(p.A)...)
		lines = append(lines, "")
		lines = append(lines, m.renderVariable(p.B)...)
		lines = append(lines, "")
		lines = append(lines, m.field("distance", fmt.Sprintf("%.2f (%.1f%% of max)", p.Distance, 100*p.Distance/color.MaxDistance)))
	}

	// Pad to fill height to prevent layout shifts
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderVariable(v model.ColorVariable) []string {
	lines := []string{m.field("name", "$"+v.Name)}

	rgb, err := color.HexToRGB(v.Hex)
	if err != nil {
		return append(lines, m.field("hex", v.Hex+" (invalid)"))
	}

	swatch := ui.Swatch(lipgloss.DefaultRenderer(), rgb, " "+rgb.Hex()+" ")
	lines = append(lines,
		m.field("hex", v.Hex)+"  "+swatch,
		m.field("rgb", rgb.String()),
	)
	if v.Line > 0 {
		lines = append(lines, m.field("line", fmt.Sprintf("%d", v.Line)))
	}
	return lines
}

func (m Model) field(label, value string) string {
	return m.styles.Label.Render(fmt.Sprintf("%-9s", label)) + m.styles.Value.Render(value)
}
