package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/svasisht/prepdash/internal/utils"
	"github.com/svasisht/prepdash/internal/validation"
)

type RoutineCmd struct {
	Show bool `help:"Print the current routine without editing."`
}

func (c *RoutineCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	routine := settings.Routine.Normalized()

	if c.Show {
		fmt.Println("Daily routine:")
		fmt.Printf("  Wake:      %s\n", routine.Wake)
		fmt.Printf("  Breakfast: %s\n", routine.Breakfast)
		fmt.Printf("  Lunch:     %s\n", routine.Lunch)
		fmt.Printf("  Snack:     %s\n", routine.Snack)
		fmt.Printf("  Dinner:    %s\n", routine.Dinner)
		fmt.Printf("  Sleep:     %s\n", routine.Sleep)
		return nil
	}

	timeCheck := func(value string) error {
		if !utils.ValidateTimeFormat(value) {
			return errors.New("use HH:MM, e.g. 06:30")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Wake up").Value(&routine.Wake).Validate(timeCheck),
			huh.NewInput().Title("Breakfast").Value(&routine.Breakfast).Validate(timeCheck),
			huh.NewInput().Title("Lunch").Value(&routine.Lunch).Validate(timeCheck),
			huh.NewInput().Title("Evening snack").Value(&routine.Snack).Validate(timeCheck),
			huh.NewInput().Title("Dinner").Value(&routine.Dinner).Validate(timeCheck),
			huh.NewInput().Title("Sleep").Value(&routine.Sleep).Validate(timeCheck),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("routine form error: %w", err)
	}

	result := validation.New().ValidateRoutine(routine)
	if result.HasConflicts() {
		fmt.Println(result.FormatReport())
		return errors.New("routine not saved, fix the conflicts above")
	}

	settings.Routine = routine
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save routine: %w", err)
	}

	fmt.Println("Routine updated.")
	return nil
}
