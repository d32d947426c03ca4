package schedule

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/svasisht/prepdash/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	studyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	routineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	examStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

// Model renders one day's schedule in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	Date     string
	Blocks   []models.Block
	Warnings []string
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Date == "" {
		return "No schedule loaded."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetPlan replaces the displayed day and scrolls back to the top.
func (m *Model) SetPlan(date string, blocks []models.Block, warnings []string) {
	m.Date = date
	m.Blocks = blocks
	m.Warnings = warnings
	m.render()
	m.viewport.GotoTop()
}

func (m *Model) render() {
	if m.Date == "" {
		m.viewport.SetContent("No schedule loaded.")
		return
	}

	var b strings.Builder
	for _, block := range m.Blocks {
		label := block.Label
		switch {
		case strings.HasPrefix(label, "EXAM"):
			label = examStyle.Render(label)
		case block.Type == models.BlockStudy:
			label = studyStyle.Render(label)
		default:
			label = routineStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s %s\n", timeStyle.Render(block.Start+" - "+block.End), label)
	}

	if len(m.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range m.Warnings {
			b.WriteString(warnStyle.Render("! "+w) + "\n")
		}
	}

	m.viewport.SetContent(b.String())
}
