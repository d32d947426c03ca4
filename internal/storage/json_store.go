package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/svasisht/prepdash/internal/models"
)

// Store is the whole-state JSON document the JSONStore reads and writes
// atomically on every mutation.
type Store struct {
	Version       int                             `json:"version"`
	Settings      Settings                        `json:"settings"`
	Subjects      map[string][]models.Chapter     `json:"subjects"`
	Ratings       map[string]models.Rating        `json:"ratings"`
	CustomPlans   map[string][]models.Block       `json:"custom_plans"`
	StudyLog      map[string]models.StudyLogEntry `json:"study_log"`
	TimerSessions []models.TimerSession           `json:"timer_sessions"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:     1,
		Settings:    DefaultSettings(),
		Subjects:    make(map[string][]models.Chapter),
		Ratings:     make(map[string]models.Rating),
		CustomPlans: make(map[string][]models.Block),
		StudyLog:    make(map[string]models.StudyLogEntry),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'prepdash init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Subjects == nil {
		s.store.Subjects = make(map[string][]models.Chapter)
	}
	if s.store.Ratings == nil {
		s.store.Ratings = make(map[string]models.Rating)
	}
	if s.store.CustomPlans == nil {
		s.store.CustomPlans = make(map[string][]models.Block)
	}
	if s.store.StudyLog == nil {
		s.store.StudyLog = make(map[string]models.StudyLogEntry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) SaveChapters(subjectKey string, chapters []models.Chapter) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Subjects[subjectKey] = chapters
	return s.save()
}

func (s *JSONStore) GetChapters(subjectKey string) ([]models.Chapter, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Subjects[subjectKey], nil
}

func (s *JSONStore) GetSubjects() (map[string][]models.Chapter, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	subjects := make(map[string][]models.Chapter, len(s.store.Subjects))
	for key, chapters := range s.store.Subjects {
		subjects[key] = chapters
	}
	return subjects, nil
}

func (s *JSONStore) SaveRating(subjectKey string, rating models.Rating) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Ratings[subjectKey] = rating
	return s.save()
}

func (s *JSONStore) GetRatings() (map[string]models.Rating, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	ratings := make(map[string]models.Rating, len(s.store.Ratings))
	for key, rating := range s.store.Ratings {
		ratings[key] = rating
	}
	return ratings, nil
}

func (s *JSONStore) SaveCustomPlan(date string, blocks []models.Block) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.CustomPlans[date] = blocks
	return s.save()
}

func (s *JSONStore) GetCustomPlans() (map[string][]models.Block, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	plans := make(map[string][]models.Block, len(s.store.CustomPlans))
	for date, blocks := range s.store.CustomPlans {
		plans[date] = blocks
	}
	return plans, nil
}

func (s *JSONStore) DeleteCustomPlan(date string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.CustomPlans[date]; !ok {
		return fmt.Errorf("no custom plan found for date: %s", date)
	}

	delete(s.store.CustomPlans, date)
	return s.save()
}

func (s *JSONStore) LogStudy(date string, hours float64, sessions int) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	entry := s.store.StudyLog[date]
	entry.Hours += hours
	entry.Sessions += sessions
	s.store.StudyLog[date] = entry
	return s.save()
}

func (s *JSONStore) GetStudyLog() (map[string]models.StudyLogEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	log := make(map[string]models.StudyLogEntry, len(s.store.StudyLog))
	for date, entry := range s.store.StudyLog {
		log[date] = entry
	}
	return log, nil
}

func (s *JSONStore) AddTimerSession(session models.TimerSession) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.TimerSessions = append(s.store.TimerSessions, session)
	return s.save()
}

func (s *JSONStore) GetTimerSessions(date string) ([]models.TimerSession, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var sessions []models.TimerSession
	for _, t := range s.store.TimerSessions {
		if t.Date == date {
			sessions = append(sessions, t)
		}
	}
	return sessions, nil
}

func (s *JSONStore) GetAllTimerSessions() ([]models.TimerSession, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	sessions := make([]models.TimerSession, len(s.store.TimerSessions))
	copy(sessions, s.store.TimerSessions)
	return sessions, nil
}

func (s *JSONStore) Snapshot() (models.Snapshot, error) {
	if s.store == nil {
		return models.Snapshot{}, fmt.Errorf("storage not loaded")
	}

	subjects, _ := s.GetSubjects()
	ratings, _ := s.GetRatings()
	plans, _ := s.GetCustomPlans()
	log, _ := s.GetStudyLog()
	sessions, _ := s.GetAllTimerSessions()

	return models.Snapshot{
		Subjects:       subjects,
		SubjectRatings: ratings,
		Routine:        s.store.Settings.Routine,
		CustomPlans:    plans,
		StudyLog:       log,
		TimerSessions:  sessions,
		Profile: models.Profile{
			Name:          s.store.Settings.Name,
			TargetPercent: s.store.Settings.TargetPercent,
			StudyHours:    s.store.Settings.StudyHours,
			PrepLevel:     s.store.Settings.PrepLevel,
			Streak:        s.store.Settings.Streak,
		},
		Language: s.store.Settings.Language,
		Elective: s.store.Settings.Elective,
	}, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
