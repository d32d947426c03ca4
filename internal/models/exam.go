package models

// Exam is an immutable catalog entry for one board-exam sitting.
type Exam struct {
	Date     string `json:"date"` // YYYY-MM-DD format
	Subject  string `json:"subject"`
	Key      string `json:"key"`
	Duration string `json:"duration"`
}
