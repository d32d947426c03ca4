package planner

import (
	"fmt"
	"sort"

	"github.com/svasisht/prepdash/internal/catalog"
	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/utils"
)

// Fixed-anchor durations, minutes.
const (
	wakeBlockMin      = 30
	breakfastBlockMin = 30
	lunchBlockMin     = 45
	snackBlockMin     = 30
	dinnerBlockMin    = 45
	sleepBlockMin     = 480

	examBlockMin       = 180
	examPrepMin        = 30
	quickReviewSpanMin = 90

	dayEndMin = 1440
)

// Planner generates day plans from an immutable state snapshot. It
// holds only the resolved exam catalog; every call is pure and
// deterministic for a given (date, snapshot) pair.
type Planner struct {
	catalog catalog.Catalog
}

func New(c catalog.Catalog) *Planner {
	return &Planner{catalog: c}
}

// Catalog exposes the resolved catalog for display layers.
func (p *Planner) Catalog() catalog.Catalog {
	return p.catalog
}

// DayPlan returns the plan for dateStr: a stored custom plan verbatim
// when one exists, otherwise a freshly generated one. Custom plans
// fully shadow generation.
func (p *Planner) DayPlan(dateStr string, snap models.Snapshot) ([]models.Block, error) {
	if custom := snap.CustomPlans[dateStr]; len(custom) > 0 {
		return custom, nil
	}
	return p.GeneratePlan(dateStr, snap)
}

// GeneratePlan synthesizes a full day's schedule from wake to sleep:
// fixed routine anchors plus priority-weighted, interleaved study
// sessions. Exam days get their own fixed sequence.
func (p *Planner) GeneratePlan(dateStr string, snap models.Snapshot) ([]models.Block, error) {
	routine := snap.Routine.Normalized()

	anchors, err := parseRoutine(routine)
	if err != nil {
		return nil, err
	}

	if exam, ok := p.catalog.ExamOn(dateStr); ok {
		return p.examDayPlan(dateStr, exam, anchors), nil
	}
	return p.regularDayPlan(dateStr, snap, anchors), nil
}

// routineAnchors is the routine parsed to minutes-of-day.
type routineAnchors struct {
	wake, breakfast, lunch, snack, dinner, sleep int
}

func parseRoutine(r models.Routine) (routineAnchors, error) {
	var a routineAnchors
	for _, field := range []struct {
		name  string
		value string
		dst   *int
	}{
		{"wake", r.Wake, &a.wake},
		{"breakfast", r.Breakfast, &a.breakfast},
		{"lunch", r.Lunch, &a.lunch},
		{"snack", r.Snack, &a.snack},
		{"dinner", r.Dinner, &a.dinner},
		{"sleep", r.Sleep, &a.sleep},
	} {
		min, err := utils.ParseTimeToMinutes(field.value)
		if err != nil {
			return a, fmt.Errorf("routine %s: %w", field.name, err)
		}
		*field.dst = min
	}
	return a, nil
}

// examDayPlan lays the fixed exam-day sequence: light morning review,
// the exam itself (exactly 180 minutes starting an hour after
// breakfast), recovery, and either light study for the next exam or
// free time.
func (p *Planner) examDayPlan(dateStr string, exam models.Exam, a routineAnchors) []models.Block {
	var blocks []models.Block
	push := func(start, end int, label string, typ models.BlockType, subjectKey string) {
		if end <= start {
			return
		}
		blocks = append(blocks, models.Block{
			Start:      utils.FormatMinutes(start),
			End:        utils.FormatMinutes(end),
			Label:      label,
			Type:       typ,
			SubjectKey: subjectKey,
		})
	}

	push(a.wake, a.wake+wakeBlockMin, "Wake Up + Fresh Up", models.BlockBreak, "")

	reviewEnd := min(a.wake+quickReviewSpanMin, a.breakfast)
	push(a.wake+wakeBlockMin, reviewEnd, "Quick Review — "+p.catalog.Label(exam.Key), models.BlockStudy, exam.Key)

	push(a.breakfast, a.breakfast+breakfastBlockMin, "BREAKFAST", models.BlockMeal, "")
	push(a.breakfast+breakfastBlockMin, a.breakfast+breakfastBlockMin+examPrepMin, "Relax + Prepare for Exam", models.BlockBreak, "")

	examStart := a.breakfast + breakfastBlockMin + examPrepMin
	examEnd := examStart + examBlockMin
	push(examStart, examEnd, "EXAM — "+exam.Subject, models.BlockStudy, exam.Key)

	// The exam may run past the scheduled lunch time.
	lunchStart := max(a.lunch, examEnd)
	push(lunchStart, lunchStart+lunchBlockMin, "LUNCH + Rest", models.BlockMeal, "")
	push(lunchStart+lunchBlockMin, a.snack, "Rest / Light Activity", models.BlockBreak, "")

	push(a.snack, a.snack+snackBlockMin, "Snack Break", models.BlockMeal, "")
	if next, ok := p.catalog.NextExamAfter(dateStr); ok {
		push(a.snack+snackBlockMin, a.dinner, "Light Study — "+p.catalog.Label(next.Key), models.BlockStudy, next.Key)
	} else {
		push(a.snack+snackBlockMin, a.dinner, "Free Time", models.BlockBreak, "")
	}

	push(a.dinner, a.dinner+dinnerBlockMin, "DINNER", models.BlockMeal, "")
	push(a.dinner+dinnerBlockMin, a.sleep, "Relax + Early Sleep", models.BlockBreak, "")
	push(a.sleep, min(a.sleep+sleepBlockMin, dayEndMin), "SLEEP", models.BlockSleep, "")

	return blocks
}

// regularDayPlan handles the default branch: compute priorities, build
// the interleaved subject queue, lay the fixed meal anchors, and fill
// every free gap with study sessions. A day 1-2 days before an exam is
// a revision day; that exam's subject gets boosted and
// overrepresented.
func (p *Planner) regularDayPlan(dateStr string, snap models.Snapshot, a routineAnchors) []models.Block {
	revisionExamKey := ""
	for _, exam := range p.catalog.Exams {
		d, err := utils.DaysBetween(dateStr, exam.Date)
		if err == nil && d >= 1 && d <= 2 {
			revisionExamKey = exam.Key
			break
		}
	}

	due := RevisionDueChapters(dateStr, snap.Subjects)
	dueSubjects := make(map[string]bool, len(due))
	for _, d := range due {
		dueSubjects[d.SubjectKey] = true
	}

	var scores []SubjectScore
	for _, key := range p.catalog.Keys() {
		priority := p.SubjectPriority(key, dateStr, snap)
		if dueSubjects[key] {
			priority += revisionDueBoost
		}
		if key == revisionExamKey {
			priority += revisionExamBoost
		}
		if priority > 0 {
			scores = append(scores, SubjectScore{Key: key, Priority: priority})
		}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Priority > scores[j].Priority
	})

	queue := BuildSubjectQueue(scores, revisionExamKey)
	filler := newGapFiller(queue, due, snap.Subjects, p.catalog.Label)

	fixed := []struct {
		time     int
		duration int
		label    string
		typ      models.BlockType
	}{
		{a.wake, wakeBlockMin, "Wake Up + Fresh Up + Light Exercise", models.BlockBreak},
		{a.breakfast, breakfastBlockMin, "BREAKFAST", models.BlockMeal},
		{a.lunch, lunchBlockMin, "LUNCH + Rest", models.BlockMeal},
		{a.snack, snackBlockMin, "Evening Break / Snack", models.BlockMeal},
		{a.dinner, dinnerBlockMin, "DINNER", models.BlockMeal},
	}
	sort.SliceStable(fixed, func(i, j int) bool { return fixed[i].time < fixed[j].time })

	lightFrom := a.dinner + dinnerBlockMin

	var blocks []models.Block
	cursor := a.wake
	for _, fb := range fixed {
		if cursor < fb.time {
			blocks = filler.fill(blocks, cursor, fb.time, cursor >= lightFrom)
			cursor = fb.time
		}
		// A previous block overrunning pushes this anchor forward;
		// fixed blocks never overlap each other.
		start := max(fb.time, cursor)
		blocks = append(blocks, models.Block{
			Start: utils.FormatMinutes(start),
			End:   utils.FormatMinutes(start + fb.duration),
			Label: fb.label,
			Type:  fb.typ,
		})
		cursor = start + fb.duration
	}

	if cursor < a.sleep {
		blocks = filler.fill(blocks, cursor, a.sleep, cursor >= lightFrom)
	}

	sleepStart := max(a.sleep, cursor)
	blocks = append(blocks, models.Block{
		Start: utils.FormatMinutes(sleepStart),
		End:   utils.FormatMinutes(min(sleepStart+sleepBlockMin, dayEndMin)),
		Label: "SLEEP",
		Type:  models.BlockSleep,
	})

	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].Start < blocks[j].Start })
	return blocks
}
