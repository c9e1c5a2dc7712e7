package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

const (
	sidebarWidth       = 16
	minWidthForSidebar = 70
)

// WavePreview is the wave list generated for one difficulty preset.
type WavePreview struct {
	Name  string
	Waves []invaders.WaveSummary
}

// WavesKeyMap defines key bindings for the wave preview screen.
type WavesKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Next  key.Binding
	Prev  key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k WavesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k WavesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Left, k.Right, k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultWavesKeyMap returns the default key bindings.
func DefaultWavesKeyMap() WavesKeyMap {
	return WavesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev preset"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next preset"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next preset"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev preset"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WavesModel is the Bubble Tea model for the wave preview screen.
type WavesModel struct {
	previews    []WavePreview
	cursor      int
	table       table.Model
	help        help.Model
	keys        WavesKeyMap
	width       int
	height      int
	done        bool
	showSidebar bool
}

// NewWavesModel creates a preview screen. cursor selects the initial preset.
func NewWavesModel(previews []WavePreview, cursor, width, height int) WavesModel {
	h := help.New()
	h.ShowAll = false

	m := WavesModel{
		previews:    previews,
		cursor:      cursor,
		keys:        DefaultWavesKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	if m.cursor < 0 || m.cursor >= len(previews) {
		m.cursor = 0
	}

	m.table = NewWaveTable(max(3, height-8), true)
	m.updateTableRows()
	return m
}

// NewWaveTable creates the table used to list waves.
func NewWaveTable(height int, focused bool) table.Model {
	columns := []table.Column{
		{Title: "Wave", Width: 6},
		{Title: "Enemies", Width: 8},
		{Title: "Default", Width: 8},
		{Title: "Fast", Width: 6},
		{Title: "Armored", Width: 8},
		{Title: "P(fast)", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// WaveRows converts summaries to table rows.
func WaveRows(waves []invaders.WaveSummary) []table.Row {
	rows := make([]table.Row, len(waves))
	for i, w := range waves {
		rows[i] = table.Row{
			fmt.Sprintf("%d", w.Number),
			fmt.Sprintf("%d", w.Enemies),
			fmt.Sprintf("%d", w.Default),
			fmt.Sprintf("%d", w.Fast),
			fmt.Sprintf("%d", w.Armored),
			fmt.Sprintf("%.0f%%", min(1, w.FastThreshold)*100),
		}
	}
	return rows
}

func (m *WavesModel) updateTableRows() {
	if len(m.previews) == 0 {
		m.table.SetRows(nil)
		return
	}
	m.table.SetRows(WaveRows(m.previews[m.cursor].Waves))
	m.table.GotoTop()
}

// Init initializes the preview model.
func (m WavesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the preview screen.
func (m WavesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Right):
			if len(m.previews) > 0 {
				m.cursor = (m.cursor + 1) % len(m.previews)
				m.updateTableRows()
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Left):
			if len(m.previews) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.previews) - 1
				}
				m.updateTableRows()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table.SetHeight(max(3, m.height-8))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the preview screen.
func (m WavesModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "WAVES"
	if len(m.previews) > 0 {
		title = fmt.Sprintf("WAVES - %s", m.previews[m.cursor].Name)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.table.View())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the presets with the current one highlighted.
func (m WavesModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Presets\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.previews {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + p.Name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// centerText pads text with spaces to center it within width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}

// RunWaves runs the interactive wave preview.
func RunWaves(previews []WavePreview, cursor, width, height int) error {
	model := NewWavesModel(previews, cursor, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
