package planchange

import (
	"testing"

	"github.com/svasisht/prepdash/internal/models"
)

const wellFormed = `Sure, let's move things around.

[PLAN_CHANGE]
action: add
start: 14:00
end: 14:30
subject: math
label: Algebra drill
[/PLAN_CHANGE]

That should help with quadratics.`

func TestParseWellFormed(t *testing.T) {
	changes := Parse(wellFormed)
	if len(changes) != 1 {
		t.Fatalf("Parse returned %d changes, want 1", len(changes))
	}

	got := changes[0]
	want := Change{Action: ActionAdd, Start: "14:00", End: "14:30", Subject: "math", Label: "Algebra drill"}
	if got != want {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseCaseInsensitiveAction(t *testing.T) {
	text := "[PLAN_CHANGE]\naction: REMOVE\nstart: 09:00\nend: 10:00\n[/PLAN_CHANGE]"
	changes := Parse(text)
	if len(changes) != 1 {
		t.Fatalf("Parse returned %d changes, want 1", len(changes))
	}
	if changes[0].Action != ActionRemove {
		t.Errorf("Action = %q, want remove", changes[0].Action)
	}
	if changes[0].Label != "Study block" {
		t.Errorf("Label = %q, want default", changes[0].Label)
	}
}

func TestParseDropsMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "missing action",
			text: "[PLAN_CHANGE]\nstart: 09:00\nend: 10:00\n[/PLAN_CHANGE]",
		},
		{
			name: "missing end",
			text: "[PLAN_CHANGE]\naction: add\nstart: 09:00\n[/PLAN_CHANGE]",
		},
		{
			name: "single-digit hour",
			text: "[PLAN_CHANGE]\naction: add\nstart: 9:00\nend: 10:00\n[/PLAN_CHANGE]",
		},
		{
			name: "unknown action",
			text: "[PLAN_CHANGE]\naction: shuffle\nstart: 09:00\nend: 10:00\n[/PLAN_CHANGE]",
		},
		{
			name: "unterminated region",
			text: "[PLAN_CHANGE]\naction: add\nstart: 09:00\nend: 10:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if changes := Parse(tt.text); len(changes) != 0 {
				t.Errorf("Parse returned %d changes, want 0", len(changes))
			}
		})
	}
}

func TestParseMultipleRegions(t *testing.T) {
	text := "[PLAN_CHANGE]\naction: add\nstart: 09:00\nend: 10:00\n[/PLAN_CHANGE]" +
		" some prose " +
		"[PLAN_CHANGE]\naction: remove\nstart: 11:00\nend: 12:00\n[/PLAN_CHANGE]"
	changes := Parse(text)
	if len(changes) != 2 {
		t.Fatalf("Parse returned %d changes, want 2", len(changes))
	}
	if changes[0].Action != ActionAdd || changes[1].Action != ActionRemove {
		t.Errorf("Parse order wrong: %+v", changes)
	}
}

func TestApplyAdd(t *testing.T) {
	blocks := Apply(nil, Parse(wellFormed))
	if len(blocks) != 1 {
		t.Fatalf("Apply produced %d blocks, want 1", len(blocks))
	}

	want := models.Block{Start: "14:00", End: "14:30", Label: "Algebra drill", Type: models.BlockStudy, SubjectKey: "math"}
	if blocks[0] != want {
		t.Errorf("Apply = %+v, want %+v", blocks[0], want)
	}
}

func TestApplyRemoveExactMatch(t *testing.T) {
	existing := []models.Block{
		{Start: "09:00", End: "10:00", Label: "Physics", Type: models.BlockStudy, SubjectKey: "physics"},
		{Start: "10:00", End: "10:15", Label: "Short Break", Type: models.BlockBreak},
	}
	changes := []Change{{Action: ActionRemove, Start: "09:00", End: "10:00"}}

	blocks := Apply(existing, changes)
	if len(blocks) != 1 {
		t.Fatalf("Apply produced %d blocks, want 1", len(blocks))
	}
	if blocks[0].Label != "Short Break" {
		t.Errorf("wrong block removed, kept %q", blocks[0].Label)
	}
}

func TestApplyReplaceKeepsType(t *testing.T) {
	existing := []models.Block{
		{Start: "13:00", End: "13:45", Label: "LUNCH + Rest", Type: models.BlockMeal},
	}
	changes := []Change{{Action: ActionReplace, Start: "13:00", End: "13:45", Label: "Quick lunch", Subject: ""}}

	blocks := Apply(existing, changes)
	if blocks[0].Label != "Quick lunch" {
		t.Errorf("Label = %q, want Quick lunch", blocks[0].Label)
	}
	if blocks[0].Type != models.BlockMeal {
		t.Errorf("Type = %q, replace must not touch type", blocks[0].Type)
	}
}

func TestApplySortsByStart(t *testing.T) {
	existing := []models.Block{
		{Start: "15:00", End: "16:00", Label: "Later", Type: models.BlockStudy},
	}
	changes := []Change{{Action: ActionAdd, Start: "08:00", End: "09:00", Label: "Earlier"}}

	blocks := Apply(existing, changes)
	if blocks[0].Label != "Earlier" || blocks[1].Label != "Later" {
		t.Errorf("blocks not sorted by start: %+v", blocks)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	existing := []models.Block{
		{Start: "09:00", End: "10:00", Label: "Physics", Type: models.BlockStudy},
	}
	Apply(existing, []Change{{Action: ActionReplace, Start: "09:00", End: "10:00", Label: "Changed"}})
	if existing[0].Label != "Physics" {
		t.Errorf("Apply mutated its input: %+v", existing[0])
	}
}

func TestStrip(t *testing.T) {
	if got := Strip(wellFormed); got != "Sure, let's move things around.\n\n\n\nThat should help with quadratics." {
		// Inner whitespace survives; only directive regions go away and
		// the surrounding text is trimmed.
		t.Errorf("Strip = %q", got)
	}
}

func TestStripDirectiveOnlyTextIsEmpty(t *testing.T) {
	text := "\n[PLAN_CHANGE]\naction: add\nstart: 14:00\nend: 14:30\nsubject: math\nlabel: Algebra drill\n[/PLAN_CHANGE]\n"
	if got := Strip(text); got != "" {
		t.Errorf("Strip = %q, want empty string", got)
	}
}

func TestStripLeavesPlainTextAlone(t *testing.T) {
	if got := Strip("  just prose  "); got != "just prose" {
		t.Errorf("Strip = %q, want trimmed prose", got)
	}
}
