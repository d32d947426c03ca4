package models

import "github.com/svasisht/prepdash/internal/constants"

// Routine holds the six fixed anchors of a student's day, all HH:MM.
// Anchors are strictly increasing in wall-clock order; sleep is always
// last.
type Routine struct {
	Wake      string `json:"wake"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Snack     string `json:"snack"`
	Dinner    string `json:"dinner"`
	Sleep     string `json:"sleep"`
}

// DefaultRoutine returns the stock routine used until the student sets
// their own.
func DefaultRoutine() Routine {
	return Routine{
		Wake:      constants.DefaultWake,
		Breakfast: constants.DefaultBreakfast,
		Lunch:     constants.DefaultLunch,
		Snack:     constants.DefaultSnack,
		Dinner:    constants.DefaultDinner,
		Sleep:     constants.DefaultSleep,
	}
}

// Normalized returns a copy with every empty anchor replaced by its
// default, so downstream time parsing only ever sees trusted strings.
func (r Routine) Normalized() Routine {
	def := DefaultRoutine()
	if r.Wake == "" {
		r.Wake = def.Wake
	}
	if r.Breakfast == "" {
		r.Breakfast = def.Breakfast
	}
	if r.Lunch == "" {
		r.Lunch = def.Lunch
	}
	if r.Snack == "" {
		r.Snack = def.Snack
	}
	if r.Dinner == "" {
		r.Dinner = def.Dinner
	}
	if r.Sleep == "" {
		r.Sleep = def.Sleep
	}
	return r
}
