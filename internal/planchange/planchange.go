// Package planchange parses and applies [PLAN_CHANGE] directives, the
// one wire format the core must handle byte-for-byte: structured edit
// instructions embedded in loosely-formatted AI-coach output.
package planchange

import (
	"regexp"
	"sort"
	"strings"

	"github.com/svasisht/prepdash/internal/models"
)

// Action is the kind of edit a directive requests.
type Action string

const (
	ActionAdd     Action = "add"
	ActionRemove  Action = "remove"
	ActionReplace Action = "replace"
)

// Change is one parsed plan-change directive.
type Change struct {
	Action  Action
	Start   string // HH:MM
	End     string // HH:MM
	Subject string
	Label   string
}

const defaultLabel = "Study block"

var (
	regionRe  = regexp.MustCompile(`(?s)\[PLAN_CHANGE\](.*?)\[/PLAN_CHANGE\]`)
	actionRe  = regexp.MustCompile(`(?i)action:\s*(add|remove|replace)`)
	startRe   = regexp.MustCompile(`start:\s*(\d{2}:\d{2})`)
	endRe     = regexp.MustCompile(`end:\s*(\d{2}:\d{2})`)
	subjectRe = regexp.MustCompile(`subject:\s*(\S+)`)
	labelRe   = regexp.MustCompile(`label:\s*(.+)`)
)

// Parse extracts every well-formed directive from text. Regions missing
// action, start, or end are dropped silently: directives come from a
// non-deterministic generator and best-effort extraction is the
// contract, not strict validation.
func Parse(text string) []Change {
	var changes []Change
	for _, m := range regionRe.FindAllStringSubmatch(text, -1) {
		region := m[1]

		action := actionRe.FindStringSubmatch(region)
		start := startRe.FindStringSubmatch(region)
		end := endRe.FindStringSubmatch(region)
		if action == nil || start == nil || end == nil {
			continue
		}

		ch := Change{
			Action: Action(strings.ToLower(action[1])),
			Start:  start[1],
			End:    end[1],
			Label:  defaultLabel,
		}
		if subject := subjectRe.FindStringSubmatch(region); subject != nil {
			ch.Subject = subject[1]
		}
		if label := labelRe.FindStringSubmatch(region); label != nil {
			if trimmed := strings.TrimSpace(label[1]); trimmed != "" {
				ch.Label = trimmed
			}
		}
		changes = append(changes, ch)
	}
	return changes
}

// Strip removes all directive regions from display text so the user
// sees clean prose.
func Strip(text string) string {
	return strings.TrimSpace(regionRe.ReplaceAllString(text, ""))
}

// Apply patches blocks with the changes, in directive order, and
// returns the result sorted by start time. Lexical HH:MM order equals
// chronological order within a day.
func Apply(blocks []models.Block, changes []Change) []models.Block {
	out := make([]models.Block, len(blocks))
	copy(out, blocks)

	for _, ch := range changes {
		switch ch.Action {
		case ActionAdd:
			out = append(out, models.Block{
				Start:      ch.Start,
				End:        ch.End,
				Label:      ch.Label,
				Type:       models.BlockStudy,
				SubjectKey: ch.Subject,
			})
		case ActionRemove:
			kept := out[:0]
			for _, b := range out {
				if !(b.Start == ch.Start && b.End == ch.End) {
					kept = append(kept, b)
				}
			}
			out = kept
		case ActionReplace:
			for i, b := range out {
				if b.Start == ch.Start && b.End == ch.End {
					out[i].Label = ch.Label
					if ch.Subject != "" {
						out[i].SubjectKey = ch.Subject
					}
				}
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
