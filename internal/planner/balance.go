package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/utils"
)

// AnalyzeBalance inspects a day's blocks for lopsided study
// distribution and neglected near-term exams, measured from todayStr.
// It returns nil when the day has no study time or nothing to warn
// about; it never fails.
func (p *Planner) AnalyzeBalance(blocks []models.Block, snap models.Snapshot, todayStr string) []string {
	subjectMinutes := make(map[string]int)
	total := 0
	for _, b := range blocks {
		if b.Type != models.BlockStudy || b.SubjectKey == "" {
			continue
		}
		start, err := utils.ParseTimeToMinutes(b.Start)
		if err != nil {
			continue
		}
		end, err := utils.ParseTimeToMinutes(b.End)
		if err != nil {
			continue
		}
		subjectMinutes[b.SubjectKey] += end - start
		total += end - start
	}
	if total == 0 {
		return nil
	}

	var warnings []string

	keys := lo.Keys(subjectMinutes)
	sort.Strings(keys)
	for _, key := range keys {
		pct := float64(subjectMinutes[key]) / float64(total)
		if pct > 0.5 && len(subjectMinutes) < 3 {
			warnings = append(warnings, fmt.Sprintf(
				"You're spending %d%% of study time on %s. Consider diversifying.",
				int(math.Round(pct*100)), p.catalog.Label(key)))
		}
	}

	for _, exam := range p.catalog.Exams {
		days, err := utils.DaysBetween(todayStr, exam.Date)
		if err != nil || days <= 0 || days > 10 {
			continue
		}
		incomplete := lo.CountBy(snap.Subjects[exam.Key], func(ch models.Chapter) bool {
			return ch.Status != models.StatusCompleted
		})
		if incomplete > 0 && subjectMinutes[exam.Key] == 0 && days <= 7 {
			plural := ""
			if incomplete > 1 {
				plural = "s"
			}
			warnings = append(warnings, fmt.Sprintf(
				"%s exam in %d days with %d chapter%s left, but it's not in today's plan!",
				p.catalog.Label(exam.Key), days, incomplete, plural))
		}
	}

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}
