package cli

import (
	"fmt"

	"github.com/svasisht/prepdash/internal/utils"
)

type ExamsCmd struct{}

func (c *ExamsCmd) Run(ctx *Context) error {
	_, p, err := ctx.loadSnapshot()
	if err != nil {
		return err
	}

	today := utils.Today()
	fmt.Println("Board exam timetable:")
	for _, exam := range p.Catalog().Exams {
		days, err := utils.DaysBetween(today, exam.Date)
		if err != nil {
			return fmt.Errorf("bad exam date %q: %w", exam.Date, err)
		}

		var remaining string
		switch {
		case days < 0:
			remaining = "done"
		case days == 0:
			remaining = "TODAY"
		case days == 1:
			remaining = "tomorrow"
		default:
			remaining = fmt.Sprintf("in %d days", days)
		}

		fmt.Printf("  %s  %-28s %-5s %s\n", exam.Date, exam.Subject, exam.Duration, remaining)
	}

	return nil
}
