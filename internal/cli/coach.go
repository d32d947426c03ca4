package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/svasisht/prepdash/internal/coach"
	"github.com/svasisht/prepdash/internal/keyring"
	"github.com/svasisht/prepdash/internal/planchange"
	"github.com/svasisht/prepdash/internal/utils"
	"github.com/svasisht/prepdash/internal/validation"
)

type CoachCmd struct {
	Context  CoachContextCmd  `cmd:"" help:"Print the full coaching prompt for an external chat."`
	Briefing CoachBriefingCmd `cmd:"" help:"Print the daily briefing prompt."`
	Apply    CoachApplyCmd    `cmd:"" help:"Apply plan-change directives from a coach transcript."`
	Key      CoachKeyCmd      `cmd:"" help:"Manage the coach API key in the system keyring."`
}

type CoachContextCmd struct{}

func (c *CoachContextCmd) Run(ctx *Context) error {
	snap, p, err := ctx.loadSnapshot()
	if err != nil {
		return err
	}
	fmt.Println(coach.BuildSystemPrompt(p.Catalog(), snap, utils.Today()))
	return nil
}

type CoachBriefingCmd struct{}

func (c *CoachBriefingCmd) Run(ctx *Context) error {
	snap, p, err := ctx.loadSnapshot()
	if err != nil {
		return err
	}
	fmt.Println(coach.BuildDailyBriefingPrompt(p.Catalog(), snap, utils.Today()))
	return nil
}

type CoachApplyCmd struct {
	Date string `arg:"" optional:"" help:"Date to patch (YYYY-MM-DD, 'today' or 'tomorrow')."`
	File string `short:"f" required:"" help:"Transcript file containing [PLAN_CHANGE] directives."`
}

func (c *CoachApplyCmd) Run(ctx *Context) error {
	dateStr, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	changes := planchange.Parse(string(text))
	if len(changes) == 0 {
		fmt.Println("No plan-change directives found in the transcript.")
		return nil
	}

	snap, p, err := ctx.loadSnapshot()
	if err != nil {
		return err
	}

	blocks, err := p.DayPlan(dateStr, snap)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	patched := planchange.Apply(blocks, changes)

	result := validation.New().ValidateBlocks(patched)
	if result.HasConflicts() {
		fmt.Println(result.FormatReport())
		return errors.New("changes not applied, the patched plan has conflicts")
	}

	if err := ctx.Store.SaveCustomPlan(dateStr, patched); err != nil {
		return fmt.Errorf("failed to save patched plan: %w", err)
	}

	fmt.Printf("Applied %d change(s) to the plan for %s:\n\n", len(changes), dateStr)
	for _, b := range patched {
		fmt.Printf("%s–%s  %s\n", b.Start, b.End, b.Label)
	}
	return nil
}

type CoachKeyCmd struct {
	Set   CoachKeySetCmd   `cmd:"" help:"Store the coach API key."`
	Clear CoachKeyClearCmd `cmd:"" help:"Remove the coach API key."`
}

type CoachKeySetCmd struct{}

func (c *CoachKeySetCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		return errors.New("system keyring is not available")
	}

	var key string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Coach API key").
				EchoMode(huh.EchoModePassword).
				Value(&key),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("key form error: %w", err)
	}

	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}
	fmt.Println("API key stored in the system keyring.")
	return nil
}

type CoachKeyClearCmd struct{}

func (c *CoachKeyClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API key was stored.")
			return nil
		}
		return err
	}
	fmt.Println("API key removed from the system keyring.")
	return nil
}
