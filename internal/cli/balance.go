package cli

import (
	"fmt"
)

type BalanceCmd struct {
	Date string `arg:"" optional:"" help:"Date to analyze (YYYY-MM-DD, 'today' or 'tomorrow')."`
}

func (c *BalanceCmd) Run(ctx *Context) error {
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

	warnings := p.AnalyzeBalance(blocks, snap, dateStr)
	if len(warnings) == 0 {
		fmt.Printf("Study balance for %s looks good.\n", dateStr)
		return nil
	}

	fmt.Printf("Balance warnings for %s:\n", dateStr)
	for _, w := range warnings {
		fmt.Printf("  - %s\n", w)
	}

	return nil
}
