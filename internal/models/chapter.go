package models

// ChapterStatus tracks a syllabus chapter through its study lifecycle.
type ChapterStatus string

const (
	StatusNotStarted    ChapterStatus = "not_started"
	StatusInProgress    ChapterStatus = "in_progress"
	StatusCompleted     ChapterStatus = "completed"
	StatusNeedsRevision ChapterStatus = "needs_revision"
)

// DefaultRevisionIntervals is the spaced-repetition schedule armed when
// a chapter first enters needs_revision: reviews 1, 3 and 7 days after
// the anchor date.
var DefaultRevisionIntervals = []int{1, 3, 7}

// StatusCycle is the order chapters move through when toggled in the UI.
var StatusCycle = []ChapterStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusCompleted,
	StatusNeedsRevision,
}

// Chapter is a single syllabus unit within a subject.
//
// The spaced-repetition fields are armed when a chapter is marked
// needs_revision: RevisionDate anchors the schedule and
// RevisionIntervals lists day offsets from that anchor. A chapter is
// due on RevisionDate + RevisionIntervals[RevisionsCompleted] days,
// and RevisionsCompleted must never exceed len(RevisionIntervals).
type Chapter struct {
	Name               string        `json:"name"`
	Status             ChapterStatus `json:"status"`
	Difficulty         int           `json:"difficulty"` // 1..5
	RevisionDate       string        `json:"revision_date,omitempty"` // YYYY-MM-DD
	RevisionIntervals  []int         `json:"revision_intervals,omitempty"`
	RevisionsCompleted int           `json:"revisions_completed,omitempty"`
}
