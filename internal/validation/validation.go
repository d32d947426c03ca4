package validation

import (
	"fmt"

	"github.com/svasisht/prepdash/internal/models"
	"github.com/svasisht/prepdash/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictOverlappingBlocks ConflictType = "overlapping_blocks"
	ConflictCoverageHole      ConflictType = "coverage_hole"
	ConflictInvalidTime       ConflictType = "invalid_time"
	ConflictEmptyBlock        ConflictType = "empty_block"
	ConflictRoutineOrder      ConflictType = "routine_order"
)

// Conflict represents a detected problem in a block sequence or routine
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Block labels or routine fields involved
	TimeRange   string   // Human-readable time range (if applicable)
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks block sequences and routines for conflicts
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateBlocks checks a day's block sequence: every time parses,
// every block has positive length, and no two blocks overlap. Blocks
// are expected sorted by start time, the way the planner emits them.
func (v *Validator) ValidateBlocks(blocks []models.Block) Result {
	result := Result{Conflicts: []Conflict{}}

	parsed := make([]struct {
		start, end int
		ok         bool
	}, len(blocks))

	for i, b := range blocks {
		start, err1 := blockMinutes(b.Start)
		end, err2 := blockMinutes(b.End)
		if err1 != nil || err2 != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTime,
				Description: fmt.Sprintf("Block %q has an invalid time: %s-%s", b.Label, b.Start, b.End),
				Items:       []string{b.Label},
			})
			continue
		}
		parsed[i].start, parsed[i].end, parsed[i].ok = start, end, true

		if end <= start {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyBlock,
				Description: fmt.Sprintf("Block %q is empty or ends before it starts: %s-%s", b.Label, b.Start, b.End),
				Items:       []string{b.Label},
				TimeRange:   b.Start + "-" + b.End,
			})
		}
	}

	for i := 1; i < len(blocks); i++ {
		if !parsed[i-1].ok || !parsed[i].ok {
			continue
		}
		if parsed[i].start < parsed[i-1].end {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictOverlappingBlocks,
				Description: fmt.Sprintf("Blocks %q and %q overlap between %s and %s",
					blocks[i-1].Label, blocks[i].Label, blocks[i].Start, blocks[i-1].End),
				Items:     []string{blocks[i-1].Label, blocks[i].Label},
				TimeRange: blocks[i].Start + "-" + blocks[i-1].End,
			})
		}
	}

	return result
}

// ValidateCoverage reports holes between consecutive blocks in addition
// to the ValidateBlocks checks. Exam days intentionally leave holes, so
// this stricter check applies to generated regular days only.
func (v *Validator) ValidateCoverage(blocks []models.Block) Result {
	result := v.ValidateBlocks(blocks)

	for i := 1; i < len(blocks); i++ {
		prevEnd, err1 := blockMinutes(blocks[i-1].End)
		start, err2 := blockMinutes(blocks[i].Start)
		if err1 != nil || err2 != nil {
			continue
		}
		if start > prevEnd {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictCoverageHole,
				Description: fmt.Sprintf("Unscheduled gap between %q and %q (%s to %s)",
					blocks[i-1].Label, blocks[i].Label, blocks[i-1].End, blocks[i].Start),
				Items:     []string{blocks[i-1].Label, blocks[i].Label},
				TimeRange: blocks[i-1].End + "-" + blocks[i].Start,
			})
		}
	}

	return result
}

// ValidateRoutine checks that all six anchors parse and run strictly
// increasing from wake to sleep.
func (v *Validator) ValidateRoutine(r models.Routine) Result {
	result := Result{Conflicts: []Conflict{}}

	fields := []struct {
		name  string
		value string
	}{
		{"wake", r.Wake},
		{"breakfast", r.Breakfast},
		{"lunch", r.Lunch},
		{"snack", r.Snack},
		{"dinner", r.Dinner},
		{"sleep", r.Sleep},
	}

	minutes := make([]int, len(fields))
	valid := true
	for i, f := range fields {
		m, err := utils.ParseTimeToMinutes(f.value)
		if err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTime,
				Description: fmt.Sprintf("Routine %s has an invalid time: %s", f.name, f.value),
				Items:       []string{f.name},
			})
			valid = false
			continue
		}
		minutes[i] = m
	}
	if !valid {
		return result
	}

	for i := 1; i < len(fields); i++ {
		if minutes[i] <= minutes[i-1] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictRoutineOrder,
				Description: fmt.Sprintf("Routine %s (%s) must come after %s (%s)",
					fields[i].name, fields[i].value, fields[i-1].name, fields[i-1].value),
				Items: []string{fields[i-1].name, fields[i].name},
			})
		}
	}

	return result
}

// blockMinutes parses a block boundary, allowing the 24:00 midnight cap
// the planner emits for the sleep block.
func blockMinutes(value string) (int, error) {
	if value == "24:00" {
		return 1440, nil
	}
	return utils.ParseTimeToMinutes(value)
}
