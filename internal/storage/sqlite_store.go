package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/svasisht/prepdash/internal/migration"
	"github.com/svasisht/prepdash/internal/models"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'prepdash init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner := migration.NewRunner(s.db, migration.Files())
	return runner.ValidateVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	runner := migration.NewRunner(s.db, migration.Files())
	_, err := runner.Apply(nil)
	return err
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "name":
			settings.Name = value
		case "target_percent":
			if _, err := fmt.Sscanf(value, "%d", &settings.TargetPercent); err != nil {
				return Settings{}, fmt.Errorf("parsing target_percent: %w", err)
			}
		case "study_hours":
			if _, err := fmt.Sscanf(value, "%d", &settings.StudyHours); err != nil {
				return Settings{}, fmt.Errorf("parsing study_hours: %w", err)
			}
		case "prep_level":
			settings.PrepLevel = value
		case "language":
			settings.Language = value
		case "elective":
			settings.Elective = value
		case "streak":
			if _, err := fmt.Sscanf(value, "%d", &settings.Streak); err != nil {
				return Settings{}, fmt.Errorf("parsing streak: %w", err)
			}
		case "wake":
			settings.Routine.Wake = value
		case "breakfast":
			settings.Routine.Breakfast = value
		case "lunch":
			settings.Routine.Lunch = value
		case "snack":
			settings.Routine.Snack = value
		case "dinner":
			settings.Routine.Dinner = value
		case "sleep":
			settings.Routine.Sleep = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return Settings{}, err
	}

	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := []struct {
		key   string
		value string
	}{
		{"name", settings.Name},
		{"target_percent", fmt.Sprintf("%d", settings.TargetPercent)},
		{"study_hours", fmt.Sprintf("%d", settings.StudyHours)},
		{"prep_level", settings.PrepLevel},
		{"language", settings.Language},
		{"elective", settings.Elective},
		{"streak", fmt.Sprintf("%d", settings.Streak)},
		{"wake", settings.Routine.Wake},
		{"breakfast", settings.Routine.Breakfast},
		{"lunch", settings.Routine.Lunch},
		{"snack", settings.Routine.Snack},
		{"dinner", settings.Routine.Dinner},
		{"sleep", settings.Routine.Sleep},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p.key, p.value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveChapters replaces a subject's chapter list wholesale. Chapter
// order is the syllabus order, kept via the position column.
func (s *SQLiteStore) SaveChapters(subjectKey string, chapters []models.Chapter) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM chapters WHERE subject_key = ?", subjectKey); err != nil {
		return fmt.Errorf("failed to clear chapters for %s: %w", subjectKey, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO chapters (
			subject_key, position, name, status, difficulty,
			revision_date, revision_intervals, revisions_completed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, ch := range chapters {
		intervals, err := json.Marshal(ch.RevisionIntervals)
		if err != nil {
			return fmt.Errorf("failed to marshal revision intervals: %w", err)
		}
		if _, err := stmt.Exec(
			subjectKey, i, ch.Name, string(ch.Status), ch.Difficulty,
			ch.RevisionDate, string(intervals), ch.RevisionsCompleted,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetChapters(subjectKey string) ([]models.Chapter, error) {
	rows, err := s.db.Query(`
		SELECT name, status, difficulty, revision_date, revision_intervals, revisions_completed
		FROM chapters WHERE subject_key = ? ORDER BY position`, subjectKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []models.Chapter
	for rows.Next() {
		ch, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
	}
	return chapters, rows.Err()
}

func (s *SQLiteStore) GetSubjects() (map[string][]models.Chapter, error) {
	rows, err := s.db.Query(`
		SELECT subject_key, name, status, difficulty, revision_date, revision_intervals, revisions_completed
		FROM chapters ORDER BY subject_key, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make(map[string][]models.Chapter)
	for rows.Next() {
		var key string
		var ch models.Chapter
		var status, intervals string
		if err := rows.Scan(&key, &ch.Name, &status, &ch.Difficulty, &ch.RevisionDate, &intervals, &ch.RevisionsCompleted); err != nil {
			return nil, err
		}
		ch.Status = models.ChapterStatus(status)
		if err := json.Unmarshal([]byte(intervals), &ch.RevisionIntervals); err != nil {
			return nil, fmt.Errorf("failed to parse revision intervals for %s/%s: %w", key, ch.Name, err)
		}
		subjects[key] = append(subjects[key], ch)
	}
	return subjects, rows.Err()
}

type chapterScanner interface {
	Scan(dest ...any) error
}

func scanChapter(row chapterScanner) (models.Chapter, error) {
	var ch models.Chapter
	var status, intervals string
	if err := row.Scan(&ch.Name, &status, &ch.Difficulty, &ch.RevisionDate, &intervals, &ch.RevisionsCompleted); err != nil {
		return models.Chapter{}, err
	}
	ch.Status = models.ChapterStatus(status)
	if err := json.Unmarshal([]byte(intervals), &ch.RevisionIntervals); err != nil {
		return models.Chapter{}, fmt.Errorf("failed to parse revision intervals for %s: %w", ch.Name, err)
	}
	return ch, nil
}

func (s *SQLiteStore) SaveRating(subjectKey string, rating models.Rating) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO ratings (subject_key, rating) VALUES (?, ?)",
		subjectKey, string(rating))
	return err
}

func (s *SQLiteStore) GetRatings() (map[string]models.Rating, error) {
	rows, err := s.db.Query("SELECT subject_key, rating FROM ratings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make(map[string]models.Rating)
	for rows.Next() {
		var key, rating string
		if err := rows.Scan(&key, &rating); err != nil {
			return nil, err
		}
		ratings[key] = models.Rating(rating)
	}
	return ratings, rows.Err()
}

func (s *SQLiteStore) SaveCustomPlan(date string, blocks []models.Block) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM custom_blocks WHERE date = ?", date); err != nil {
		return fmt.Errorf("failed to clear custom plan for %s: %w", date, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO custom_blocks (date, position, start_time, end_time, label, type, subject_key)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, b := range blocks {
		if _, err := stmt.Exec(date, i, b.Start, b.End, b.Label, string(b.Type), b.SubjectKey); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetCustomPlans() (map[string][]models.Block, error) {
	rows, err := s.db.Query(`
		SELECT date, start_time, end_time, label, type, subject_key
		FROM custom_blocks ORDER BY date, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make(map[string][]models.Block)
	for rows.Next() {
		var date, typ string
		var b models.Block
		if err := rows.Scan(&date, &b.Start, &b.End, &b.Label, &typ, &b.SubjectKey); err != nil {
			return nil, err
		}
		b.Type = models.BlockType(typ)
		plans[date] = append(plans[date], b)
	}
	return plans, rows.Err()
}

func (s *SQLiteStore) DeleteCustomPlan(date string) error {
	res, err := s.db.Exec("DELETE FROM custom_blocks WHERE date = ?", date)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no custom plan found for date: %s", date)
	}
	return nil
}

// LogStudy folds hours and sessions into the day's running totals.
func (s *SQLiteStore) LogStudy(date string, hours float64, sessions int) error {
	_, err := s.db.Exec(`
		INSERT INTO study_log (date, hours, sessions) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			hours = hours + excluded.hours,
			sessions = sessions + excluded.sessions`,
		date, hours, sessions)
	return err
}

func (s *SQLiteStore) GetStudyLog() (map[string]models.StudyLogEntry, error) {
	rows, err := s.db.Query("SELECT date, hours, sessions FROM study_log")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	log := make(map[string]models.StudyLogEntry)
	for rows.Next() {
		var date string
		var entry models.StudyLogEntry
		if err := rows.Scan(&date, &entry.Hours, &entry.Sessions); err != nil {
			return nil, err
		}
		log[date] = entry
	}
	return log, rows.Err()
}

func (s *SQLiteStore) AddTimerSession(session models.TimerSession) error {
	_, err := s.db.Exec(`
		INSERT INTO timer_sessions (id, date, subject, chapter, minutes)
		VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.Date, session.Subject, session.Chapter, session.Minutes)
	return err
}

func (s *SQLiteStore) GetTimerSessions(date string) ([]models.TimerSession, error) {
	rows, err := s.db.Query(`
		SELECT id, date, subject, chapter, minutes
		FROM timer_sessions WHERE date = ? ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTimerSessions(rows)
}

func (s *SQLiteStore) GetAllTimerSessions() ([]models.TimerSession, error) {
	rows, err := s.db.Query(`
		SELECT id, date, subject, chapter, minutes
		FROM timer_sessions ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTimerSessions(rows)
}

func collectTimerSessions(rows *sql.Rows) ([]models.TimerSession, error) {
	var sessions []models.TimerSession
	for rows.Next() {
		var t models.TimerSession
		if err := rows.Scan(&t.ID, &t.Date, &t.Subject, &t.Chapter, &t.Minutes); err != nil {
			return nil, err
		}
		sessions = append(sessions, t)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) Snapshot() (models.Snapshot, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load settings: %w", err)
	}
	subjects, err := s.GetSubjects()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load subjects: %w", err)
	}
	ratings, err := s.GetRatings()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load ratings: %w", err)
	}
	plans, err := s.GetCustomPlans()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load custom plans: %w", err)
	}
	log, err := s.GetStudyLog()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load study log: %w", err)
	}
	sessions, err := s.GetAllTimerSessions()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load timer sessions: %w", err)
	}

	return models.Snapshot{
		Subjects:       subjects,
		SubjectRatings: ratings,
		Routine:        settings.Routine,
		CustomPlans:    plans,
		StudyLog:       log,
		TimerSessions:  sessions,
		Profile: models.Profile{
			Name:          settings.Name,
			TargetPercent: settings.TargetPercent,
			StudyHours:    settings.StudyHours,
			PrepLevel:     settings.PrepLevel,
			Streak:        settings.Streak,
		},
		Language: settings.Language,
		Elective: settings.Elective,
	}, nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
