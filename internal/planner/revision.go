package planner

import (
	"sort"

	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/utils"
)

// DueChapter identifies one chapter due for spaced-repetition review on
// a given date.
type DueChapter struct {
	SubjectKey   string
	ChapterIndex int
	ChapterName  string
	Interval     int
}

// RevisionDueChapters scans every chapter of every subject and returns
// those due for review on dateStr. A chapter is due when it is marked
// needs_revision, its repetition schedule is armed, it has intervals
// left, and dateStr lands exactly on revisionDate plus the next
// interval. Subjects are visited in sorted key order so the result is
// deterministic; within a subject, chapters keep their syllabus order.
func RevisionDueChapters(dateStr string, subjects map[string][]models.Chapter) []DueChapter {
	keys := make([]string, 0, len(subjects))
	for key := range subjects {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var due []DueChapter
	for _, key := range keys {
		for idx, ch := range subjects[key] {
			if ch.Status != models.StatusNeedsRevision || ch.RevisionDate == "" || len(ch.RevisionIntervals) == 0 {
				continue
			}
			if ch.RevisionsCompleted >= len(ch.RevisionIntervals) {
				continue
			}
			interval := ch.RevisionIntervals[ch.RevisionsCompleted]
			dueDate, err := utils.AddDays(ch.RevisionDate, interval)
			if err != nil {
				// Unparseable anchor date: the due rule cannot hold.
				continue
			}
			if dueDate == dateStr {
				due = append(due, DueChapter{
					SubjectKey:   key,
					ChapterIndex: idx,
					ChapterName:  ch.Name,
					Interval:     interval,
				})
			}
		}
	}
	return due
}
