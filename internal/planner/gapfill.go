package planner

import (
	"github.com/samber/lo"

	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/utils"
)

// Session-length policy for filling free gaps with study blocks.
const (
	minSessionMin   = 25 // below this a gap sliver stays unfilled
	idealSessionMin = 50
	maxSessionMin   = 60
	lightSessionMin = 40 // ideal and cap for post-dinner gaps

	// A remainder within this slack of the cap becomes one final
	// session instead of leaving an unusable sliver.
	remainderSlackMin = 10

	shortBreakMin   = 10
	longBreakMin    = 15
	longBreakEveryN = 3
)

// gapFiller carries the day-level scheduling state across gaps: the
// subject queue position continues from one gap to the next so subject
// rotation is continuous, revision-due chapters are consumed at most
// once across the whole day, and each subject cycles through its
// incomplete chapters over successive sessions.
type gapFiller struct {
	queue      []string
	offset     int
	due        []DueChapter
	subjects   map[string][]models.Chapter
	label      func(string) string
	chapterSeq map[string]int
}

func newGapFiller(queue []string, due []DueChapter, subjects map[string][]models.Chapter, label func(string) string) *gapFiller {
	return &gapFiller{
		queue:      queue,
		due:        due,
		subjects:   subjects,
		label:      label,
		chapterSeq: make(map[string]int),
	}
}

// fill appends alternating study/break blocks covering [gapStart,
// gapEnd) and returns the extended slice. An empty queue leaves the gap
// unfilled; that is not an error.
func (f *gapFiller) fill(blocks []models.Block, gapStart, gapEnd int, isLight bool) []models.Block {
	if len(f.queue) == 0 {
		return blocks
	}

	ideal, capLen := idealSessionMin, maxSessionMin
	if isLight {
		ideal, capLen = lightSessionMin, lightSessionMin
	}

	cursor := gapStart
	breaks := 0
	for gapEnd-cursor >= minSessionMin {
		length := ideal
		if remaining := gapEnd - cursor; remaining <= capLen+remainderSlackMin {
			// Absorb the remainder into one final session.
			length = remaining
		}

		subj := f.queue[f.offset%len(f.queue)]
		f.offset++

		blocks = append(blocks, models.Block{
			Start:      utils.FormatMinutes(cursor),
			End:        utils.FormatMinutes(cursor + length),
			Label:      f.sessionLabel(subj, isLight),
			Type:       models.BlockStudy,
			SubjectKey: subj,
		})
		cursor += length

		// A break goes in only when another session still fits after
		// it; the clamp keeps it from eating into the minimum
		// next-session length, collapsing to no break at all when the
		// remainder is exactly one session.
		remaining := gapEnd - cursor
		if remaining < minSessionMin {
			break
		}
		breakLen := shortBreakMin
		label := "Short Break"
		if (breaks+1)%longBreakEveryN == 0 {
			breakLen = longBreakMin
			label = "Break + Stretch"
		}
		if breakLen > remaining-minSessionMin {
			breakLen = remaining - minSessionMin
		}
		if breakLen <= 0 {
			continue
		}
		blocks = append(blocks, models.Block{
			Start: utils.FormatMinutes(cursor),
			End:   utils.FormatMinutes(cursor + breakLen),
			Label: label,
			Type:  models.BlockBreak,
		})
		cursor += breakLen
		breaks++
	}
	return blocks
}

// sessionLabel picks the chapter for a study session. A chapter due for
// revision today is preferred and consumed from the due list; otherwise
// the subject's incomplete chapters are cycled so successive sessions
// show different chapters.
func (f *gapFiller) sessionLabel(subj string, isLight bool) string {
	name := f.takeDueChapter(subj)
	if name == "" {
		incomplete := lo.Filter(f.subjects[subj], func(ch models.Chapter, _ int) bool {
			return ch.Status != models.StatusCompleted
		})
		if len(incomplete) == 0 {
			name = "Revision"
		} else {
			name = incomplete[f.chapterSeq[subj]%len(incomplete)].Name
			f.chapterSeq[subj]++
		}
	}

	label := f.label(subj) + " — " + name
	if isLight {
		label = "Light Revision — " + label
	}
	return label
}

func (f *gapFiller) takeDueChapter(subj string) string {
	for i, d := range f.due {
		if d.SubjectKey == subj {
			f.due = append(f.due[:i], f.due[i+1:]...)
			return d.ChapterName + " (Revision)"
		}
	}
	return ""
}
