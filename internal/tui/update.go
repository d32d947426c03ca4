package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/svasisht/prepdash/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.schedule.SetSize(msg.Width, contentHeight)
		m.subjects.SetSize(msg.Width, contentHeight)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}

		if m.state == StateToday {
			switch {
			case key.Matches(msg, m.keys.PrevDay):
				m.shiftDate(-1)
				return m, nil
			case key.Matches(msg, m.keys.NextDay):
				m.shiftDate(1)
				return m, nil
			case key.Matches(msg, m.keys.Today):
				m.date = utils.Today()
				m.reloadSnapshot()
				m.refreshPlan()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.schedule, cmd = m.schedule.Update(msg)
	case StateSubjects:
		m.subjects, cmd = m.subjects.Update(msg)
	}
	return m, cmd
}
