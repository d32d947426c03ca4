package models

// Rating is the student's self-assessed confidence in a subject.
type Rating string

const (
	RatingWeak   Rating = "weak"
	RatingMedium Rating = "medium"
	RatingStrong Rating = "strong"
)

// StudyLogEntry aggregates a single day's study activity.
type StudyLogEntry struct {
	Hours    float64 `json:"hours"`
	Sessions int     `json:"sessions"`
}

// TimerSession records one completed timed study sitting.
type TimerSession struct {
	ID      string `json:"id"`
	Date    string `json:"date"` // YYYY-MM-DD format
	Subject string `json:"subject"`
	Chapter string `json:"chapter,omitempty"`
	Minutes int    `json:"minutes"`
}

// Profile holds the student's onboarding answers, used only for prompt
// construction and display.
type Profile struct {
	Name          string `json:"name"`
	TargetPercent int    `json:"target_percent"`
	StudyHours    int    `json:"study_hours"`
	PrepLevel     string `json:"prep_level"`
	Streak        int    `json:"streak"`
}

// Snapshot is the full, immutable planner input: everything the
// day-plan generator and its helpers read. The planner never touches
// storage directly; callers assemble a Snapshot and pass it by value.
type Snapshot struct {
	Subjects       map[string][]Chapter     `json:"subjects"`
	SubjectRatings map[string]Rating        `json:"subject_ratings"`
	Routine        Routine                  `json:"routine"`
	CustomPlans    map[string][]Block       `json:"custom_plans"`
	StudyLog       map[string]StudyLogEntry `json:"study_log"`
	TimerSessions  []TimerSession           `json:"timer_sessions"`
	Profile        Profile                  `json:"profile"`
	Language       string                   `json:"language"`
	Elective       string                   `json:"elective"`
}
