package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/svasisht/prepdash/internal/models"
)

type LogCmd struct {
	Subject string `arg:"" help:"Subject key (e.g. physics)."`
	Minutes int    `arg:"" help:"Minutes studied."`
	Chapter string `help:"Chapter the session covered."`
	Date    string `help:"Session date (YYYY-MM-DD), defaults to today."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if c.Minutes <= 0 {
		return fmt.Errorf("minutes must be positive, got %d", c.Minutes)
	}

	dateStr, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	_, p, err := ctx.loadSnapshot()
	if err != nil {
		return err
	}

	key := strings.ToLower(c.Subject)
	if _, ok := p.Catalog().ExamFor(key); !ok {
		return fmt.Errorf("unknown subject %q, run 'prepdash subject list' to see keys", key)
	}

	session := models.TimerSession{
		ID:      uuid.New().String(),
		Date:    dateStr,
		Subject: key,
		Chapter: c.Chapter,
		Minutes: c.Minutes,
	}
	if err := ctx.Store.AddTimerSession(session); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	if err := ctx.Store.LogStudy(dateStr, float64(c.Minutes)/60.0, 1); err != nil {
		return fmt.Errorf("failed to update study log: %w", err)
	}

	logEntry, err := ctx.Store.GetStudyLog()
	if err != nil {
		return fmt.Errorf("failed to read study log: %w", err)
	}

	fmt.Printf("Logged %dm of %s on %s.\n", c.Minutes, p.Catalog().Label(key), dateStr)
	if day, ok := logEntry[dateStr]; ok {
		fmt.Printf("Total for %s: %.1fh across %d session(s).\n", dateStr, day.Hours, day.Sessions)
	}

	return nil
}
