package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/planner"
	"github.com/svasisht/prepdash/internal/storage"
	"github.com/svasisht/prepdash/internal/tui/components/schedule"
	"github.com/svasisht/prepdash/internal/tui/components/subjects"
	"github.com/svasisht/prepdash/internal/utils"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateSubjects
	StateExams

	tabCount = 3
)

type Model struct {
	store    storage.Provider
	planner  *planner.Planner
	snap     models.Snapshot
	date     string
	state    SessionState
	keys     KeyMap
	help     help.Model
	schedule schedule.Model
	subjects subjects.Model
	planErr  error
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, p *planner.Planner, snap models.Snapshot) Model {
	m := Model{
		store:    store,
		planner:  p,
		snap:     snap,
		date:     utils.Today(),
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		schedule: schedule.New(0, 0),
		subjects: subjects.New(p.Catalog(), snap, 0, 0),
	}
	m.refreshPlan()
	return m
}

// refreshPlan regenerates the displayed day from the current snapshot.
func (m *Model) refreshPlan() {
	blocks, err := m.planner.DayPlan(m.date, m.snap)
	if err != nil {
		m.planErr = err
		m.schedule.SetPlan(m.date, nil, nil)
		return
	}
	m.planErr = nil
	warnings := m.planner.AnalyzeBalance(blocks, m.snap, m.date)
	m.schedule.SetPlan(m.date, blocks, warnings)
}

// reloadSnapshot re-reads storage so edits made from another terminal
// show up without restarting the dashboard.
func (m *Model) reloadSnapshot() {
	snap, err := m.store.Snapshot()
	if err != nil {
		return
	}
	m.snap = snap
	m.subjects.Refresh(m.planner.Catalog(), snap)
}

// shiftDate pages the schedule tab by days; bad arithmetic on a
// hand-edited date falls back to today.
func (m *Model) shiftDate(days int) {
	next, err := utils.AddDays(m.date, days)
	if err != nil {
		next = utils.Today()
	}
	m.date = next
	m.refreshPlan()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday {
		keys = append(keys, m.keys.PrevDay, m.keys.NextDay, m.keys.Today)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	if m.state == StateToday {
		navigation = append(navigation, m.keys.PrevDay, m.keys.NextDay, m.keys.Today)
	}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) headline() string {
	switch m.state {
	case StateToday:
		if m.date == utils.Today() {
			return fmt.Sprintf("Today, %s", m.date)
		}
		return m.date
	case StateSubjects:
		return "Syllabus progress"
	default:
		return "Exam timetable"
	}
}
