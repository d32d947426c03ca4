package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/svasisht/prepdash/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	snap, p, err := ctx.loadSnapshot()
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(ctx.Store, p, snap), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
