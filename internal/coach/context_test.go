package coach

import (
	"strings"
	"testing"

	"github.com/svasisht/prepdash/internal/catalog"
	"github.com/svasisht/prepdash/internal/models"
)

func testCatalog() catalog.Catalog {
	return catalog.Resolve(catalog.LanguageKannada, catalog.ElectiveComputer)
}

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Subjects: map[string][]models.Chapter{
			"physics": {
				{Name: "Force", Status: models.StatusCompleted, Difficulty: 4},
				{Name: "Sound", Status: models.StatusInProgress, Difficulty: 3},
				{Name: "Light", Status: models.StatusNotStarted, Difficulty: 3},
			},
		},
		SubjectRatings: map[string]models.Rating{"physics": models.RatingWeak},
		Routine:        models.DefaultRoutine(),
		StudyLog: map[string]models.StudyLogEntry{
			"2026-01-14": {Hours: 2.5, Sessions: 3},
		},
		TimerSessions: []models.TimerSession{
			{ID: "a1", Date: "2026-01-15", Subject: "physics", Chapter: "Sound", Minutes: 50},
			{ID: "b2", Date: "2026-01-14", Subject: "chemistry", Minutes: 40},
		},
		Profile: models.Profile{
			Name: "Ravi", TargetPercent: 85, StudyHours: 6, PrepLevel: "mostly", Streak: 4,
		},
	}
}

func TestBuildStudentContextProfile(t *testing.T) {
	context := BuildStudentContext(testCatalog(), testSnapshot(), "2026-01-15")

	for _, want := range []string{
		"Student: Ravi",
		"Target: 85%",
		"Daily study target: 6 hours",
		"Prep level: mostly",
		"Current streak: 4 days",
		"Today: 2026-01-15",
	} {
		if !strings.Contains(context, want) {
			t.Errorf("context missing %q", want)
		}
	}
}

func TestBuildStudentContextDefaults(t *testing.T) {
	context := BuildStudentContext(testCatalog(), models.Snapshot{}, "2026-01-15")

	for _, want := range []string{
		"Student: Student",
		"Target: 90%",
		"Daily study target: 8 hours",
		"Prep level: somewhat",
		"Wake: 06:00",
	} {
		if !strings.Contains(context, want) {
			t.Errorf("context missing default %q", want)
		}
	}
}

func TestBuildStudentContextExamSchedule(t *testing.T) {
	context := BuildStudentContext(testCatalog(), testSnapshot(), "2026-03-06")

	if !strings.Contains(context, "Kannada: 2026-03-06 (TODAY)") {
		t.Error("exam today not marked TODAY")
	}
	if !strings.Contains(context, "Physics: 2026-03-09 (3 days left)") {
		t.Error("upcoming exam countdown missing")
	}
	if !strings.Contains(context, "Mathematics: 2026-03-02 (DONE)") {
		t.Error("past exam not marked DONE")
	}
}

func TestBuildStudentContextSubjectStatus(t *testing.T) {
	context := BuildStudentContext(testCatalog(), testSnapshot(), "2026-01-15")

	if !strings.Contains(context, "Physics: confidence=weak, chapters=3 (done=1, in_progress=1, needs_revision=0, not_started=1)") {
		t.Errorf("physics status line wrong:\n%s", context)
	}
	// Unrated, chapterless subjects still get a line with defaults.
	if !strings.Contains(context, "Chemistry: confidence=medium, chapters=0") {
		t.Errorf("chemistry default status line missing:\n%s", context)
	}
}

func TestBuildStudentContextStudyLog(t *testing.T) {
	context := BuildStudentContext(testCatalog(), testSnapshot(), "2026-01-15")

	if !strings.Contains(context, "2026-01-14: 2.5h, 3 sessions") {
		t.Error("logged day missing")
	}
	if !strings.Contains(context, "2026-01-13: no study") {
		t.Error("empty day missing")
	}
	// The window is the 7 days ending today.
	if strings.Contains(context, "2026-01-08:") {
		t.Error("window extends too far back")
	}
}

func TestBuildStudentContextTimerSessions(t *testing.T) {
	context := BuildStudentContext(testCatalog(), testSnapshot(), "2026-01-15")

	if !strings.Contains(context, "=== TODAY'S TIMER SESSIONS ===") {
		t.Fatal("timer section missing when today has sessions")
	}
	if !strings.Contains(context, "Physics — Sound: 50 min") {
		t.Error("today's session missing")
	}
	if strings.Contains(context, "40 min") {
		t.Error("yesterday's session leaked into today's list")
	}

	// Section omitted entirely on a day without sessions.
	quiet := BuildStudentContext(testCatalog(), testSnapshot(), "2026-01-20")
	if strings.Contains(quiet, "TIMER SESSIONS") {
		t.Error("timer section present on a day without sessions")
	}
}

func TestBuildSystemPromptIncludesDirectiveFormat(t *testing.T) {
	prompt := BuildSystemPrompt(testCatalog(), testSnapshot(), "2026-01-15")

	if !strings.Contains(prompt, "Student: Ravi") {
		t.Error("system prompt missing student context")
	}
	for _, want := range []string{"[PLAN_CHANGE]", "[/PLAN_CHANGE]", "action: add|remove|replace"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildDailyBriefingPrompt(t *testing.T) {
	prompt := BuildDailyBriefingPrompt(testCatalog(), testSnapshot(), "2026-01-15")

	if !strings.Contains(prompt, "Student: Ravi") {
		t.Error("briefing prompt missing student context")
	}
	if !strings.Contains(prompt, "daily briefing") {
		t.Error("briefing instructions missing")
	}
	if strings.Contains(prompt, "action: add|remove|replace") {
		t.Error("briefing prompt should not carry the directive format")
	}
}
