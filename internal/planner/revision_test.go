package planner

import (
	"testing"

	"github.com/svasisht/prepdash/internal/models"
)

func TestRevisionDueChapters(t *testing.T) {
	subjects := map[string][]models.Chapter{
		"physics": {
			{
				Name:              "Force",
				Status:            models.StatusNeedsRevision,
				Difficulty:        3,
				RevisionDate:      "2026-01-01",
				RevisionIntervals: []int{1, 3, 7},
			},
		},
	}

	tests := []struct {
		date   string
		nmDue  int
	}{
		{"2026-01-01", 0}, // anchor day itself is not due
		{"2026-01-02", 1}, // anchor + first interval
		{"2026-01-03", 0},
	}

	for _, tt := range tests {
		due := RevisionDueChapters(tt.date, subjects)
		if len(due) != tt.nmDue {
			t.Errorf("RevisionDueChapters(%s) returned %d chapters, want %d", tt.date, len(due), tt.nmDue)
		}
	}

	due := RevisionDueChapters("2026-01-02", subjects)
	if due[0].SubjectKey != "physics" || due[0].ChapterIndex != 0 || due[0].ChapterName != "Force" || due[0].Interval != 1 {
		t.Errorf("unexpected due entry: %+v", due[0])
	}
}

func TestRevisionDueAdvancesWithCompletions(t *testing.T) {
	ch := models.Chapter{
		Name:               "Force",
		Status:             models.StatusNeedsRevision,
		RevisionDate:       "2026-01-01",
		RevisionIntervals:  []int{1, 3, 7},
		RevisionsCompleted: 1,
	}
	subjects := map[string][]models.Chapter{"physics": {ch}}

	if due := RevisionDueChapters("2026-01-02", subjects); len(due) != 0 {
		t.Error("first interval should be consumed after one completion")
	}
	if due := RevisionDueChapters("2026-01-04", subjects); len(due) != 1 || due[0].Interval != 3 {
		t.Errorf("second interval not due on 2026-01-04: %+v", due)
	}
}

func TestRevisionDueExhaustedSchedule(t *testing.T) {
	subjects := map[string][]models.Chapter{
		"physics": {{
			Name:               "Force",
			Status:             models.StatusNeedsRevision,
			RevisionDate:       "2026-01-01",
			RevisionIntervals:  []int{1},
			RevisionsCompleted: 1,
		}},
	}
	if due := RevisionDueChapters("2026-01-02", subjects); len(due) != 0 {
		t.Error("chapter with all intervals completed must never be due")
	}
}

func TestRevisionDueRequiresStatusAndSchedule(t *testing.T) {
	subjects := map[string][]models.Chapter{
		"physics": {
			{Name: "In Progress", Status: models.StatusInProgress, RevisionDate: "2026-01-01", RevisionIntervals: []int{1}},
			{Name: "Unarmed", Status: models.StatusNeedsRevision},
		},
	}
	if due := RevisionDueChapters("2026-01-02", subjects); len(due) != 0 {
		t.Errorf("chapters without needs_revision status or schedule leaked through: %+v", due)
	}
}

func TestRevisionDueDeterministicOrder(t *testing.T) {
	mk := func(name string) models.Chapter {
		return models.Chapter{
			Name:              name,
			Status:            models.StatusNeedsRevision,
			RevisionDate:      "2026-01-01",
			RevisionIntervals: []int{1},
		}
	}
	subjects := map[string][]models.Chapter{
		"physics":   {mk("Force"), mk("Sound")},
		"chemistry": {mk("Electrolysis")},
	}

	due := RevisionDueChapters("2026-01-02", subjects)
	if len(due) != 3 {
		t.Fatalf("got %d due chapters, want 3", len(due))
	}
	// Sorted subject keys, chapter order within a subject.
	wantOrder := []string{"Electrolysis", "Force", "Sound"}
	for i, want := range wantOrder {
		if due[i].ChapterName != want {
			t.Errorf("due[%d] = %s, want %s", i, due[i].ChapterName, want)
		}
	}
}
