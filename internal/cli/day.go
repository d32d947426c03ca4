package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/svasisht/prepdash/internal/models"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD, 'today' or 'tomorrow')."`
}

var (
	dayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	dayTimeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dayStudyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dayMealStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dayWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func (c *DayCmd) Run(ctx *Context) error {
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

	fmt.Println(dayHeaderStyle.Render(fmt.Sprintf("Schedule for %s", dateStr)))
	fmt.Println()

	studyMinutes := 0
	for _, b := range blocks {
		label := b.Label
		switch b.Type {
		case models.BlockStudy:
			label = dayStudyStyle.Render(label)
			studyMinutes += blockDuration(b)
		case models.BlockMeal:
			label = dayMealStyle.Render(label)
		}
		fmt.Printf("%s  %s\n", dayTimeStyle.Render(fmt.Sprintf("%s–%s", b.Start, b.End)), label)
	}

	fmt.Printf("\nStudy time: %dh %02dm\n", studyMinutes/60, studyMinutes%60)

	for _, w := range p.AnalyzeBalance(blocks, snap, dateStr) {
		fmt.Println(dayWarnStyle.Render("! " + w))
	}

	return nil
}
