package cli

import (
	"fmt"
)

type PlanCmd struct {
	Date string `arg:"" optional:"" help:"Date to plan (YYYY-MM-DD, 'today' or 'tomorrow')."`
	Pin  bool   `help:"Save the generated plan as the custom plan for the date."`
}

func (c *PlanCmd) Run(ctx *Context) error {
	dateStr, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	snap, p, err := ctx.loadSnapshot()
	if err != nil {
		return err
	}

	blocks, err := p.DayPlan(dateStr, snap)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	if _, custom := snap.CustomPlans[dateStr]; custom {
		fmt.Printf("Plan for %s (customized):\n\n", dateStr)
	} else {
		fmt.Printf("Plan for %s:\n\n", dateStr)
	}

	for _, b := range blocks {
		fmt.Printf("%s–%s  %-32s  [%s]\n", b.Start, b.End, b.Label, b.Type)
	}

	if c.Pin {
		if err := ctx.Store.SaveCustomPlan(dateStr, blocks); err != nil {
			return fmt.Errorf("failed to pin plan: %w", err)
		}
		fmt.Printf("\nPinned as the custom plan for %s.\n", dateStr)
	}

	return nil
}
