package models

// BlockType classifies a scheduled block within a day plan.
type BlockType string

const (
	BlockStudy BlockType = "study"
	BlockMeal  BlockType = "meal"
	BlockBreak BlockType = "break"
	BlockSleep BlockType = "sleep"
)

// Block is a single labeled time interval in a day's schedule.
// Start and End are HH:MM strings; End is strictly after Start except
// for the sleep block, whose end is capped at minute 1440 for same-day
// representation.
type Block struct {
	Start      string    `json:"start"` // HH:MM format
	End        string    `json:"end"`   // HH:MM format
	Label      string    `json:"label"`
	Type       BlockType `json:"type"`
	SubjectKey string    `json:"subject_key,omitempty"`
}
