package planner

import (
	"github.com/samber/lo"

	"github.com/svasisht/prepdash/internal/constants"
	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/utils"
)

// Priority weighting. The four factors are each normalized to [0,1];
// the weighted sum only ranks subjects against each other, it is not an
// absolute scale.
const (
	weightWeakness    = 0.30
	weightUrgency     = 0.35
	weightChapterLoad = 0.20
	weightDifficulty  = 0.15

	// Flat boosts applied by the generator on top of the base score.
	revisionDueBoost  = 0.3
	revisionExamBoost = 0.4

	// Subjects with no chapters recorded stay minimally visible.
	emptySubjectPriority = 0.1
)

// SubjectScore pairs a subject key with its computed priority for one
// target date. Ephemeral: recomputed per call, never persisted.
type SubjectScore struct {
	Key      string
	Priority float64
}

// SubjectPriority computes the urgency score for one subject on
// targetDate. Subjects without a catalog exam, with a past exam, or
// with every chapter completed score zero and drop out of scheduling.
func (p *Planner) SubjectPriority(subjectKey, targetDate string, snap models.Snapshot) float64 {
	exam, ok := p.catalog.ExamFor(subjectKey)
	if !ok {
		return 0
	}

	daysUntil, err := utils.DaysBetween(targetDate, exam.Date)
	if err != nil || daysUntil < 0 {
		return 0
	}

	chapters := snap.Subjects[subjectKey]
	if len(chapters) == 0 {
		return emptySubjectPriority
	}

	incomplete := lo.Filter(chapters, func(ch models.Chapter, _ int) bool {
		return ch.Status != models.StatusCompleted
	})
	if len(incomplete) == 0 {
		return 0
	}

	rating := snap.SubjectRatings[subjectKey]
	if rating == "" {
		rating = models.Rating(constants.DefaultSubjectRating)
	}
	weakness := 0.5
	switch rating {
	case models.RatingWeak:
		weakness = 1.0
	case models.RatingStrong:
		weakness = 0.2
	}

	urgency := 10.0 / float64(max(daysUntil, 1))
	if urgency > 1 {
		urgency = 1
	}

	chapterLoad := float64(len(incomplete)) / float64(len(chapters))

	diffSum := lo.SumBy(incomplete, func(ch models.Chapter) float64 {
		if ch.Difficulty == 0 {
			return 3
		}
		return float64(ch.Difficulty)
	})
	difficulty := diffSum / float64(len(incomplete)) / 5

	return weakness*weightWeakness + urgency*weightUrgency +
		chapterLoad*weightChapterLoad + difficulty*weightDifficulty
}
