package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/svasisht/prepdash/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		if m.planErr != nil {
			content = errorStyle.Render(fmt.Sprintf("Could not build a schedule: %v", m.planErr))
		} else {
			content = m.schedule.View()
		}
	case StateSubjects:
		content = m.subjects.View()
	case StateExams:
		content = m.viewExams()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		headlineStyle.Render(m.headline()),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Subjects", "Exams"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewExams() string {
	today := utils.Today()
	var b strings.Builder
	for _, exam := range m.planner.Catalog().Exams {
		days, err := utils.DaysBetween(today, exam.Date)
		if err != nil {
			continue
		}

		line := fmt.Sprintf("%s  %-28s %s", exam.Date, exam.Subject, examCountdown(days))
		if days < 0 {
			line = doneExamStyle.Render(line)
		} else if days <= 7 {
			line = soonExamStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func examCountdown(days int) string {
	switch {
	case days < 0:
		return "done"
	case days == 0:
		return "TODAY"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
