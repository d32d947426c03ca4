package storage

import (
	"github.com/svasisht/prepdash/internal/constants"
	"github.com/svasisht/prepdash/internal/models"
)

// Settings is the persisted configuration: the student profile, the
// catalog selectors, and the daily routine anchors.
type Settings struct {
	Name          string         `json:"name"`
	TargetPercent int            `json:"target_percent"`
	StudyHours    int            `json:"study_hours"`
	PrepLevel     string         `json:"prep_level"`
	Language      string         `json:"language"`
	Elective      string         `json:"elective"`
	Streak        int            `json:"streak"`
	Routine       models.Routine `json:"routine"`
}

func DefaultSettings() Settings {
	return Settings{
		TargetPercent: constants.DefaultTargetPercent,
		StudyHours:    constants.DefaultStudyHours,
		PrepLevel:     constants.DefaultPrepLevel,
		Language:      constants.DefaultLanguage,
		Elective:      constants.DefaultElective,
		Routine:       models.DefaultRoutine(),
	}
}

// Provider abstracts the persistence backend. The backend is chosen by
// the config path extension: .json selects JSONStore, everything else
// SQLiteStore.
//
// Stores are not safe for concurrent use by multiple goroutines, and
// running multiple processes against the same config path is not
// supported.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Subjects
	SaveChapters(subjectKey string, chapters []models.Chapter) error
	GetChapters(subjectKey string) ([]models.Chapter, error)
	GetSubjects() (map[string][]models.Chapter, error)
	SaveRating(subjectKey string, rating models.Rating) error
	GetRatings() (map[string]models.Rating, error)

	// Custom plans
	SaveCustomPlan(date string, blocks []models.Block) error
	GetCustomPlans() (map[string][]models.Block, error)
	DeleteCustomPlan(date string) error

	// Study log
	LogStudy(date string, hours float64, sessions int) error
	GetStudyLog() (map[string]models.StudyLogEntry, error)

	// Timer sessions
	AddTimerSession(models.TimerSession) error
	GetTimerSessions(date string) ([]models.TimerSession, error)
	GetAllTimerSessions() ([]models.TimerSession, error)

	// Snapshot assembles the full planner input in one read.
	Snapshot() (models.Snapshot, error)

	// Utils
	GetConfigPath() string
}
