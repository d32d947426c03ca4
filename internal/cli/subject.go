package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/utils"
)

type SubjectCmd struct {
	List    SubjectListCmd    `cmd:"" default:"1" help:"List subjects with chapter progress."`
	Rate    SubjectRateCmd    `cmd:"" help:"Set your confidence rating for a subject."`
	Chapter SubjectChapterCmd `cmd:"" help:"Update a chapter's study status."`
}

type SubjectListCmd struct{}

func (c *SubjectListCmd) Run(ctx *Context) error {
	snap, p, err := ctx.loadSnapshot()
	if err != nil {
		return err
	}

	cat := p.Catalog()
	for _, key := range cat.Keys() {
		chapters := snap.Subjects[key]
		counts := lo.CountValuesBy(chapters, func(ch models.Chapter) models.ChapterStatus {
			return ch.Status
		})

		rating := string(snap.SubjectRatings[key])
		if rating == "" {
			rating = "unrated"
		}

		fmt.Printf("%s (%s, %s)\n", cat.Label(key), key, rating)
		if len(chapters) == 0 {
			fmt.Println("  no chapters recorded")
			continue
		}
		fmt.Printf("  %d chapters: %d done, %d in progress, %d to revise, %d not started\n",
			len(chapters),
			counts[models.StatusCompleted],
			counts[models.StatusInProgress],
			counts[models.StatusNeedsRevision],
			counts[models.StatusNotStarted])
		for i, ch := range chapters {
			fmt.Printf("  %2d. %-36s %s\n", i+1, ch.Name, ch.Status)
		}
	}

	return nil
}

type SubjectRateCmd struct {
	Subject string `arg:"" help:"Subject key (e.g. physics)."`
	Rating  string `arg:"" enum:"weak,medium,strong" help:"Confidence rating."`
}

func (c *SubjectRateCmd) Run(ctx *Context) error {
	_, p, err := ctx.loadSnapshot()
	if err != nil {
		return err
	}

	key := strings.ToLower(c.Subject)
	if _, ok := p.Catalog().ExamFor(key); !ok {
		return fmt.Errorf("unknown subject %q, run 'prepdash subject list' to see keys", key)
	}

	if err := ctx.Store.SaveRating(key, models.Rating(c.Rating)); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	fmt.Printf("Rated %s as %s.\n", p.Catalog().Label(key), c.Rating)
	return nil
}

type SubjectChapterCmd struct {
	Subject string `arg:"" help:"Subject key (e.g. physics)."`
	Index   int    `arg:"" help:"Chapter number as shown by 'subject list' (1-based)."`
	Status  string `arg:"" enum:"not_started,in_progress,completed,needs_revision" help:"New chapter status."`
}

func (c *SubjectChapterCmd) Run(ctx *Context) error {
	_, p, err := ctx.loadSnapshot()
	if err != nil {
		return err
	}

	key := strings.ToLower(c.Subject)
	if _, ok := p.Catalog().ExamFor(key); !ok {
		return fmt.Errorf("unknown subject %q, run 'prepdash subject list' to see keys", key)
	}

	chapters, err := ctx.Store.GetChapters(key)
	if err != nil {
		return fmt.Errorf("failed to load chapters: %w", err)
	}
	if c.Index < 1 || c.Index > len(chapters) {
		return fmt.Errorf("chapter index %d out of range for %s (1..%d)", c.Index, key, len(chapters))
	}

	ch := &chapters[c.Index-1]
	status := models.ChapterStatus(c.Status)
	armRevision(ch, status, utils.Today())
	ch.Status = status

	if err := ctx.Store.SaveChapters(key, chapters); err != nil {
		return fmt.Errorf("failed to save chapters: %w", err)
	}

	fmt.Printf("%s chapter %d (%s) is now %s.\n", p.Catalog().Label(key), c.Index, ch.Name, status)
	return nil
}

// armRevision starts the spaced-repetition schedule the first time a
// chapter enters needs_revision, and clears it when the chapter leaves
// that state for anything other than completed.
func armRevision(ch *models.Chapter, status models.ChapterStatus, todayStr string) {
	switch {
	case status == models.StatusNeedsRevision && ch.Status != models.StatusNeedsRevision:
		ch.RevisionDate = todayStr
		ch.RevisionIntervals = append([]int(nil), models.DefaultRevisionIntervals...)
		ch.RevisionsCompleted = 0
	case status == models.StatusNotStarted || status == models.StatusInProgress:
		ch.RevisionDate = ""
		ch.RevisionIntervals = nil
		ch.RevisionsCompleted = 0
	}
}
