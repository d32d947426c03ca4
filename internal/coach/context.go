// Package coach builds the prompt blocks handed to an external AI study
// coach. Chat transport is out of scope; the student pastes these into
// whatever assistant they use, and the [PLAN_CHANGE] directives in the
// reply come back through the planchange package.
package coach

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/svasisht/prepdash/internal/catalog"
	"github.com/svasisht/prepdash/internal/constants"
	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/utils"
)

// BuildStudentContext renders the student's complete study state as a
// text block: profile, exam countdown, per-subject progress, the last
// week of study, today's timer sessions, and the daily routine.
func BuildStudentContext(c catalog.Catalog, snap models.Snapshot, todayStr string) string {
	name := snap.Profile.Name
	if name == "" {
		name = "Student"
	}
	target := snap.Profile.TargetPercent
	if target == 0 {
		target = constants.DefaultTargetPercent
	}
	hours := snap.Profile.StudyHours
	if hours == 0 {
		hours = constants.DefaultStudyHours
	}
	prepLevel := snap.Profile.PrepLevel
	if prepLevel == "" {
		prepLevel = constants.DefaultPrepLevel
	}

	var lines []string
	lines = append(lines,
		fmt.Sprintf("Student: %s", name),
		fmt.Sprintf("Target: %d%%", target),
		fmt.Sprintf("Daily study target: %d hours", hours),
		fmt.Sprintf("Prep level: %s", prepLevel),
		fmt.Sprintf("Current streak: %d days", snap.Profile.Streak),
		fmt.Sprintf("Today: %s", todayStr),
		"")

	lines = append(lines, "=== EXAM SCHEDULE ===")
	for _, exam := range c.Exams {
		status := "DONE"
		if days, err := utils.DaysBetween(todayStr, exam.Date); err == nil {
			switch {
			case days == 0:
				status = "TODAY"
			case days > 0:
				status = fmt.Sprintf("%d days left", days)
			}
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%s) — %s", c.Label(exam.Key), exam.Date, status, exam.Duration))
	}
	lines = append(lines, "")

	lines = append(lines, "=== SUBJECT STATUS ===")
	for _, key := range c.Keys() {
		rating := snap.SubjectRatings[key]
		if rating == "" {
			rating = models.Rating(constants.DefaultSubjectRating)
		}
		chapters := snap.Subjects[key]
		counts := lo.CountValuesBy(chapters, func(ch models.Chapter) models.ChapterStatus {
			return ch.Status
		})
		lines = append(lines, fmt.Sprintf(
			"%s: confidence=%s, chapters=%d (done=%d, in_progress=%d, needs_revision=%d, not_started=%d)",
			c.Label(key), rating, len(chapters),
			counts[models.StatusCompleted], counts[models.StatusInProgress],
			counts[models.StatusNeedsRevision], counts[models.StatusNotStarted]))
	}
	lines = append(lines, "")

	lines = append(lines, "=== RECENT STUDY (last 7 days) ===")
	for i := 6; i >= 0; i-- {
		day, err := utils.AddDays(todayStr, -i)
		if err != nil {
			break
		}
		if entry, ok := snap.StudyLog[day]; ok {
			lines = append(lines, fmt.Sprintf("%s: %.1fh, %d sessions", day, entry.Hours, entry.Sessions))
		} else {
			lines = append(lines, fmt.Sprintf("%s: no study", day))
		}
	}
	lines = append(lines, "")

	todaySessions := lo.Filter(snap.TimerSessions, func(s models.TimerSession, _ int) bool {
		return s.Date == todayStr
	})
	if len(todaySessions) > 0 {
		lines = append(lines, "=== TODAY'S TIMER SESSIONS ===")
		for _, s := range todaySessions {
			chapter := s.Chapter
			if chapter == "" {
				chapter = "general"
			}
			lines = append(lines, fmt.Sprintf("%s — %s: %d min", c.Label(s.Subject), chapter, s.Minutes))
		}
		lines = append(lines, "")
	}

	r := snap.Routine.Normalized()
	lines = append(lines, "=== DAILY ROUTINE ===")
	lines = append(lines, fmt.Sprintf("Wake: %s, Breakfast: %s, Lunch: %s, Snack: %s, Dinner: %s, Sleep: %s",
		r.Wake, r.Breakfast, r.Lunch, r.Snack, r.Dinner, r.Sleep))

	return strings.Join(lines, "\n")
}

// BuildSystemPrompt wraps the student context with the coaching
// guidelines, including the [PLAN_CHANGE] directive format.
func BuildSystemPrompt(c catalog.Catalog, snap models.Snapshot, todayStr string) string {
	context := BuildStudentContext(c, snap, todayStr)

	return `You are an AI Study Coach for an ICSE Class 10 student preparing for their board exams. You have access to their complete study data below.

` + context + `

=== YOUR COACHING GUIDELINES ===

1. Be warm, supportive, but FIRMLY HONEST. Don't sugarcoat when the student is falling behind.
2. When the student wants to study strong subjects over weak ones, PUSH BACK. Cite specific data — exam dates, chapter counts, confidence ratings.
3. Celebrate real achievements with specific numbers ("You completed 3 Physics chapters this week!").
4. Reference actual exam dates and days remaining.
5. Keep responses concise — students are busy. Use bullet points.
6. When suggesting plan changes, output them in this exact format:

[PLAN_CHANGE]
action: add|remove|replace
start: HH:MM
end: HH:MM
subject: subject_key
label: Description of the block
[/PLAN_CHANGE]

7. Only suggest plan changes when the student explicitly asks to modify their plan.
8. Never be preachy or lecture-like. Be a friend who genuinely cares about their exam results.
9. Use the student's name naturally in conversation.`
}

// BuildDailyBriefingPrompt asks for a short morning summary instead of
// an open-ended chat.
func BuildDailyBriefingPrompt(c catalog.Catalog, snap models.Snapshot, todayStr string) string {
	context := BuildStudentContext(c, snap, todayStr)

	return `You are an AI Study Coach for an ICSE Class 10 student. Generate a brief daily briefing based on their data.

` + context + `

Generate a SHORT daily briefing (max 150 words) with these sections:
- A warm 1-line greeting using their name
- **Progress Snapshot**: Key stats from yesterday/this week (hours studied, chapters completed)
- **Today's Focus**: 2-3 specific subjects/chapters they should prioritize today and why
- **Motivation**: A brief, genuine motivational line tied to their actual progress

Keep it punchy and actionable. Use bold for headers. Don't use plan change tags here.`
}
