package storage

import (
	"path/filepath"
	"testing"

	"github.com/svasisht/prepdash/internal/models"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteInitSeedsDefaultSettings(t *testing.T) {
	store := setupSQLiteStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings.Language != "kannada" || settings.Elective != "computer" {
		t.Errorf("unexpected catalog defaults: %+v", settings)
	}
	if settings.Routine.Wake != "06:00" || settings.Routine.Sleep != "22:30" {
		t.Errorf("unexpected routine defaults: %+v", settings.Routine)
	}
}

func TestSQLiteInitIsIdempotent(t *testing.T) {
	store := setupSQLiteStore(t)

	settings, _ := store.GetSettings()
	settings.Name = "Ravi"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	// A second Init re-runs migrations but must not clobber data.
	if err := store.Init(); err != nil {
		t.Fatalf("second Init() failed: %v", err)
	}
	got, _ := store.GetSettings()
	if got.Name != "Ravi" {
		t.Errorf("settings lost on re-init: %+v", got)
	}
}

func TestSQLiteLoadUninitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}

func TestSQLiteSettingsRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)

	want := Settings{
		Name:          "Ananya",
		TargetPercent: 85,
		StudyHours:    6,
		PrepLevel:     "mostly",
		Language:      "hindi",
		Elective:      "economics",
		Streak:        4,
		Routine: models.Routine{
			Wake: "05:30", Breakfast: "07:30", Lunch: "12:30",
			Snack: "16:30", Dinner: "20:00", Sleep: "22:00",
		},
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got != want {
		t.Errorf("settings round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSQLiteChaptersPreserveOrder(t *testing.T) {
	store := setupSQLiteStore(t)

	chapters := []models.Chapter{
		{Name: "Force", Status: models.StatusCompleted, Difficulty: 4},
		{Name: "Work and Energy", Status: models.StatusInProgress, Difficulty: 5},
		{Name: "Sound", Status: models.StatusNotStarted, Difficulty: 3},
	}
	if err := store.SaveChapters("physics", chapters); err != nil {
		t.Fatalf("SaveChapters() failed: %v", err)
	}

	got, err := store.GetChapters("physics")
	if err != nil {
		t.Fatalf("GetChapters() failed: %v", err)
	}
	if len(got) != len(chapters) {
		t.Fatalf("got %d chapters, want %d", len(got), len(chapters))
	}
	for i := range chapters {
		if got[i].Name != chapters[i].Name || got[i].Status != chapters[i].Status {
			t.Errorf("chapter %d mismatch: got %+v, want %+v", i, got[i], chapters[i])
		}
	}
}

func TestSQLiteChaptersRevisionFields(t *testing.T) {
	store := setupSQLiteStore(t)

	chapters := []models.Chapter{{
		Name:               "Sound",
		Status:             models.StatusNeedsRevision,
		Difficulty:         3,
		RevisionDate:       "2026-01-10",
		RevisionIntervals:  []int{1, 3, 7},
		RevisionsCompleted: 1,
	}}
	if err := store.SaveChapters("physics", chapters); err != nil {
		t.Fatalf("SaveChapters() failed: %v", err)
	}

	got, _ := store.GetChapters("physics")
	if got[0].RevisionDate != "2026-01-10" || got[0].RevisionsCompleted != 1 {
		t.Errorf("revision fields lost: %+v", got[0])
	}
	if len(got[0].RevisionIntervals) != 3 || got[0].RevisionIntervals[1] != 3 {
		t.Errorf("revision intervals lost: %v", got[0].RevisionIntervals)
	}
}

func TestSQLiteSaveChaptersReplaces(t *testing.T) {
	store := setupSQLiteStore(t)

	if err := store.SaveChapters("physics", []models.Chapter{
		{Name: "Force", Status: models.StatusNotStarted, Difficulty: 3},
		{Name: "Sound", Status: models.StatusNotStarted, Difficulty: 3},
	}); err != nil {
		t.Fatalf("SaveChapters() failed: %v", err)
	}
	if err := store.SaveChapters("physics", []models.Chapter{
		{Name: "Light", Status: models.StatusNotStarted, Difficulty: 4},
	}); err != nil {
		t.Fatalf("second SaveChapters() failed: %v", err)
	}

	got, _ := store.GetChapters("physics")
	if len(got) != 1 || got[0].Name != "Light" {
		t.Errorf("chapters not replaced wholesale: %+v", got)
	}
}

func TestSQLiteRatings(t *testing.T) {
	store := setupSQLiteStore(t)

	if err := store.SaveRating("physics", models.RatingWeak); err != nil {
		t.Fatalf("SaveRating() failed: %v", err)
	}
	if err := store.SaveRating("physics", models.RatingStrong); err != nil {
		t.Fatalf("SaveRating() overwrite failed: %v", err)
	}
	if err := store.SaveRating("chemistry", models.RatingMedium); err != nil {
		t.Fatalf("SaveRating() failed: %v", err)
	}

	ratings, err := store.GetRatings()
	if err != nil {
		t.Fatalf("GetRatings() failed: %v", err)
	}
	if ratings["physics"] != models.RatingStrong || ratings["chemistry"] != models.RatingMedium {
		t.Errorf("unexpected ratings: %v", ratings)
	}
}

func TestSQLiteCustomPlans(t *testing.T) {
	store := setupSQLiteStore(t)

	blocks := []models.Block{
		{Start: "09:00", End: "10:00", Label: "Physics — Force", Type: models.BlockStudy, SubjectKey: "physics"},
		{Start: "10:00", End: "10:15", Label: "Short Break", Type: models.BlockBreak},
	}
	if err := store.SaveCustomPlan("2026-01-15", blocks); err != nil {
		t.Fatalf("SaveCustomPlan() failed: %v", err)
	}

	plans, err := store.GetCustomPlans()
	if err != nil {
		t.Fatalf("GetCustomPlans() failed: %v", err)
	}
	got := plans["2026-01-15"]
	if len(got) != 2 || got[0] != blocks[0] || got[1] != blocks[1] {
		t.Errorf("custom plan round trip mismatch: %+v", got)
	}

	if err := store.DeleteCustomPlan("2026-01-15"); err != nil {
		t.Fatalf("DeleteCustomPlan() failed: %v", err)
	}
	if err := store.DeleteCustomPlan("2026-01-15"); err == nil {
		t.Error("deleting a missing custom plan should fail")
	}
}

func TestSQLiteLogStudyAccumulates(t *testing.T) {
	store := setupSQLiteStore(t)

	if err := store.LogStudy("2026-01-15", 1.5, 2); err != nil {
		t.Fatalf("LogStudy() failed: %v", err)
	}
	if err := store.LogStudy("2026-01-15", 0.5, 1); err != nil {
		t.Fatalf("LogStudy() failed: %v", err)
	}

	log, err := store.GetStudyLog()
	if err != nil {
		t.Fatalf("GetStudyLog() failed: %v", err)
	}
	entry := log["2026-01-15"]
	if entry.Hours != 2.0 || entry.Sessions != 3 {
		t.Errorf("study log not accumulated: %+v", entry)
	}
}

func TestSQLiteTimerSessions(t *testing.T) {
	store := setupSQLiteStore(t)

	sessions := []models.TimerSession{
		{ID: "a1", Date: "2026-01-15", Subject: "physics", Chapter: "Force", Minutes: 50},
		{ID: "b2", Date: "2026-01-15", Subject: "chemistry", Minutes: 40},
		{ID: "c3", Date: "2026-01-16", Subject: "physics", Minutes: 25},
	}
	for _, session := range sessions {
		if err := store.AddTimerSession(session); err != nil {
			t.Fatalf("AddTimerSession() failed: %v", err)
		}
	}

	day, err := store.GetTimerSessions("2026-01-15")
	if err != nil {
		t.Fatalf("GetTimerSessions() failed: %v", err)
	}
	if len(day) != 2 {
		t.Errorf("got %d sessions for the day, want 2", len(day))
	}

	all, err := store.GetAllTimerSessions()
	if err != nil {
		t.Fatalf("GetAllTimerSessions() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d sessions overall, want 3", len(all))
	}
}

func TestSQLiteSnapshot(t *testing.T) {
	store := setupSQLiteStore(t)

	settings, _ := store.GetSettings()
	settings.Name = "Ravi"
	settings.Streak = 7
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	if err := store.SaveChapters("physics", []models.Chapter{
		{Name: "Force", Status: models.StatusInProgress, Difficulty: 4},
	}); err != nil {
		t.Fatalf("SaveChapters() failed: %v", err)
	}
	if err := store.SaveRating("physics", models.RatingWeak); err != nil {
		t.Fatalf("SaveRating() failed: %v", err)
	}
	if err := store.SaveCustomPlan("2026-01-20", []models.Block{
		{Start: "09:00", End: "10:00", Label: "Mock test", Type: models.BlockStudy, SubjectKey: "physics"},
	}); err != nil {
		t.Fatalf("SaveCustomPlan() failed: %v", err)
	}
	if err := store.LogStudy("2026-01-15", 2, 3); err != nil {
		t.Fatalf("LogStudy() failed: %v", err)
	}

	snap, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if snap.Profile.Name != "Ravi" || snap.Profile.Streak != 7 {
		t.Errorf("profile not assembled: %+v", snap.Profile)
	}
	if len(snap.Subjects["physics"]) != 1 || snap.SubjectRatings["physics"] != models.RatingWeak {
		t.Errorf("subjects not assembled: %+v", snap.Subjects)
	}
	if len(snap.CustomPlans["2026-01-20"]) != 1 {
		t.Errorf("custom plans not assembled: %+v", snap.CustomPlans)
	}
	if snap.StudyLog["2026-01-15"].Sessions != 3 {
		t.Errorf("study log not assembled: %+v", snap.StudyLog)
	}
	if snap.Routine.Wake != "06:00" {
		t.Errorf("routine not assembled: %+v", snap.Routine)
	}
}
