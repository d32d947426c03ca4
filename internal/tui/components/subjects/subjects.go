package subjects

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/svasisht/prepdash/internal/catalog"
	"github.com/svasisht/prepdash/internal/models"
)

// Item is one subject row: label, confidence rating and chapter
// progress.
type Item struct {
	Key      string
	Label    string
	Rating   models.Rating
	Chapters []models.Chapter
}

func (i Item) Title() string {
	rating := string(i.Rating)
	if rating == "" {
		rating = "unrated"
	}
	return fmt.Sprintf("%s (%s)", i.Label, rating)
}

func (i Item) Description() string {
	if len(i.Chapters) == 0 {
		return "no chapters recorded"
	}
	counts := lo.CountValuesBy(i.Chapters, func(ch models.Chapter) models.ChapterStatus {
		return ch.Status
	})
	return fmt.Sprintf("%d/%d done | %d in progress | %d to revise",
		counts[models.StatusCompleted],
		len(i.Chapters),
		counts[models.StatusInProgress],
		counts[models.StatusNeedsRevision])
}

func (i Item) FilterValue() string { return i.Label }

type Model struct {
	list list.Model
}

func New(c catalog.Catalog, snap models.Snapshot, width, height int) Model {
	l := list.New(buildItems(c, snap), list.NewDefaultDelegate(), width, height)
	l.Title = "Subjects"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	return Model{list: l}
}

func buildItems(c catalog.Catalog, snap models.Snapshot) []list.Item {
	items := make([]list.Item, 0, len(c.Keys()))
	for _, key := range c.Keys() {
		items = append(items, Item{
			Key:      key,
			Label:    c.Label(key),
			Rating:   snap.SubjectRatings[key],
			Chapters: snap.Subjects[key],
		})
	}
	return items
}

// Refresh rebuilds the rows from a fresh snapshot.
func (m *Model) Refresh(c catalog.Catalog, snap models.Snapshot) {
	m.list.SetItems(buildItems(c, snap))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
