// Package fitness holds the records shared by the dashboard stores and the
// metrics derivation: workouts, daily calorie stats and body-part configuration.
package fitness

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout          = "2006-01-02"
	DefaultCalorieGoal  = 600
	RecentWorkoutsLimit = 10
)

type BodyPart string

const (
	UpperBody BodyPart = "Upper Body"
	LowerBody BodyPart = "Lower Body"
	Core      BodyPart = "Core"
	Cardio    BodyPart = "Cardio"
	FullBody  BodyPart = "Full Body"
)

// BodyParts is the fixed tag vocabulary, in display order.
var BodyParts = []BodyPart{UpperBody, LowerBody, Core, Cardio, FullBody}

func (b BodyPart) Valid() bool {
	return slices.Contains(BodyParts, b)
}

// ParseBodyPart matches s against the vocabulary, ignoring case and surrounding space.
func ParseBodyPart(s string) (BodyPart, error) {
	s = strings.TrimSpace(s)
	for _, b := range BodyParts {
		if strings.EqualFold(string(b), s) {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown body part: %q", s)
}

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"

	DefaultDifficulty = Intermediate
)

// ParseDifficulty returns DefaultDifficulty for an empty string.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDifficulty, nil
	}
	for _, d := range []Difficulty{Beginner, Intermediate, Advanced} {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty: %q", s)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("unknown priority: %q", s)
	}
}

// Workout is a single completed session. Workouts are never updated or deleted.
type Workout struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"userId"`
	Name            string     `json:"name"`
	DurationMinutes int        `json:"durationMinutes"`
	CaloriesBurned  int        `json:"caloriesBurned"`
	Difficulty      Difficulty `json:"difficulty"`
	Notes           *string    `json:"notes,omitempty"`
	BodyParts       []BodyPart `json:"bodyParts"`
	CompletedAt     time.Time  `json:"completedAt"`
}

func (w Workout) HasBodyPart(part BodyPart) bool {
	return slices.Contains(w.BodyParts, part)
}

// DailyStat is the per-day calorie aggregate. Date is a calendar date at midnight UTC.
type DailyStat struct {
	UserID         uuid.UUID `json:"userId"`
	Date           time.Time `json:"date"`
	CaloriesBurned int       `json:"caloriesBurned"`
	CalorieGoal    int       `json:"calorieGoal"`
}

func (d DailyStat) DateKey() string {
	return d.Date.Format(DateLayout)
}

// BodyPartProgress is a user's configuration row for one body part.
type BodyPartProgress struct {
	UserID         uuid.UUID  `json:"userId"`
	BodyPart       BodyPart   `json:"bodyPart"`
	Priority       Priority   `json:"priority"`
	LastWorkedDate *time.Time `json:"lastWorkedDate,omitempty"`
}

// CalendarDate returns midnight UTC of t's calendar day in t's own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
