package cli

import (
	"fmt"

	"github.com/svasisht/prepdash/internal/catalog"
	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/planner"
	"github.com/svasisht/prepdash/internal/storage"
	"github.com/svasisht/prepdash/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// loadSnapshot opens storage and assembles the planner input together
// with a planner for the snapshot's catalog selection.
func (ctx *Context) loadSnapshot() (models.Snapshot, *planner.Planner, error) {
	if err := ctx.Store.Load(); err != nil {
		return models.Snapshot{}, nil, err
	}
	snap, err := ctx.Store.Snapshot()
	if err != nil {
		return models.Snapshot{}, nil, err
	}
	p := planner.New(catalog.Resolve(snap.Language, snap.Elective))
	return snap, p, nil
}

// resolveDate turns a date argument into YYYY-MM-DD, accepting "today"
// and "tomorrow" shortcuts.
func resolveDate(arg string) (string, error) {
	switch arg {
	case "", "today":
		return utils.Today(), nil
	case "tomorrow":
		return utils.AddDays(utils.Today(), 1)
	}
	if _, err := utils.ParseDate(arg); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return arg, nil
}

// blockDuration returns a block's length in minutes, 0 when its times
// do not parse.
func blockDuration(b models.Block) int {
	start, err := utils.ParseTimeToMinutes(b.Start)
	if err != nil {
		return 0
	}
	end := 1440
	if b.End != "24:00" {
		end, err = utils.ParseTimeToMinutes(b.End)
		if err != nil {
			return 0
		}
	}
	return end - start
}
