package models

import (
	"strings"
	"time"
)

// Week lists the days of a meal plan in display order.
var Week = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// MealPlan maps each day to the planned meal. Days without an entry (or with
// an empty meal) have nothing planned.
type MealPlan map[time.Weekday]string

// PlannedMeal is one row of a plan in week order.
type PlannedMeal struct {
	Day  time.Weekday
	Meal string
}

// Entries returns the planned meals in Monday..Sunday order, skipping empty
// days.
func (p MealPlan) Entries() []PlannedMeal {
	out := make([]PlannedMeal, 0, len(p))
	for _, d := range Week {
		if m := strings.TrimSpace(p[d]); m != "" {
			out = append(out, PlannedMeal{Day: d, Meal: m})
		}
	}
	return out
}

// IsEmpty reports whether no day has a meal.
func (p MealPlan) IsEmpty() bool {
	return len(p.Entries()) == 0
}

// ParseDay accepts a weekday name in any case, or its three-letter prefix.
func ParseDay(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for _, d := range Week {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, true
		}
	}
	return 0, false
}
