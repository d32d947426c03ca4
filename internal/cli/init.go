package cli

import (
	"fmt"
	"os"

	"github.com/svasisht/prepdash/internal/catalog"
	"github.com/svasisht/prepdash/internal/logger"
)

type InitCmd struct {
	Force bool `help:"Reinitialize, discarding any existing data."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if err := os.Remove(ctx.Store.GetConfigPath()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Seed the default syllabus for subjects with nothing recorded yet.
	seeded := 0
	for key, chapters := range catalog.DefaultChapters() {
		existing, err := ctx.Store.GetChapters(key)
		if err != nil {
			return fmt.Errorf("failed to check chapters for %s: %w", key, err)
		}
		if len(existing) > 0 {
			continue
		}
		if err := ctx.Store.SaveChapters(key, chapters); err != nil {
			return fmt.Errorf("failed to seed chapters for %s: %w", key, err)
		}
		seeded++
	}

	logger.Info("storage initialized", "path", ctx.Store.GetConfigPath(), "subjects_seeded", seeded)
	fmt.Printf("Initialized prepdash storage at: %s\n", ctx.Store.GetConfigPath())
	if seeded > 0 {
		fmt.Printf("Seeded the default syllabus for %d subject(s).\n", seeded)
	}
	return nil
}
