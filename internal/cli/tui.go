package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/whispem/Neural-Network-View/internal/config"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

type presetRow struct {
	name string
	desc string
}

// PresetListModel is the bubbletea model for interactive preset selection.
type PresetListModel struct {
	Presets  []presetRow
	Cursor   int
	Selected *presetRow
}

// NewPresetListModel creates a list model over the built-in presets.
func NewPresetListModel() PresetListModel {
	names := config.PresetNames()
	rows := make([]presetRow, len(names))
	for i, name := range names {
		cfg, _ := config.Preset(name)
		rows[i] = presetRow{name: name, desc: describeConfig(cfg)}
	}
	return PresetListModel{Presets: rows}
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Presets)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Presets[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, row := range m.Presets {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-10s  %s", cursor, row.name, listDimStyle.Render(row.desc))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickPreset runs the interactive preset picker. The second return value is
// false when the user quit without choosing.
func pickPreset() (string, bool, error) {
	m := NewPresetListModel()
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	fm, ok := finalModel.(PresetListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return "", false, nil
	}
	return fm.Selected.name, true, nil
}
