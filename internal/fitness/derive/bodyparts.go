package derive

import (
	"strings"
	"time"

	"github.com/2beens/fitdash/internal/fitness"
)

// BodyPartSet is either the user's Configured rows or the built-in Defaults.
type BodyPartSet interface {
	Entries() []fitness.BodyPartProgress
	Source() string
	isBodyPartSet()
}

type Configured struct {
	Rows []fitness.BodyPartProgress
}

func (c Configured) Entries() []fitness.BodyPartProgress { return c.Rows }
func (Configured) Source() string                         { return "configured" }
func (Configured) isBodyPartSet()                         {}

type Defaults struct{}

func (Defaults) Entries() []fitness.BodyPartProgress { return DefaultBodyParts() }
func (Defaults) Source() string                      { return "default" }
func (Defaults) isBodyPartSet()                      {}

// DefaultBodyParts is used for users without any configuration rows.
func DefaultBodyParts() []fitness.BodyPartProgress {
	return []fitness.BodyPartProgress{
		{BodyPart: fitness.UpperBody, Priority: fitness.PriorityHigh},
		{BodyPart: fitness.Core, Priority: fitness.PriorityMedium},
		{BodyPart: fitness.LowerBody, Priority: fitness.PriorityHigh},
		{BodyPart: fitness.Cardio, Priority: fitness.PriorityLow},
	}
}

// ResolveBodyParts picks Defaults when rows is empty, or absent after a failed fetch.
func ResolveBodyParts(rows []fitness.BodyPartProgress) BodyPartSet {
	if len(rows) == 0 {
		return Defaults{}
	}
	return Configured{Rows: rows}
}

type BodyPartSummary struct {
	Name        fitness.BodyPart `json:"name"`
	Priority    fitness.Priority `json:"priority"`
	Progress    float64          `json:"progress"`
	LastWorked  string           `json:"lastWorked"`
	Exercises   []string         `json:"exercises,omitempty"`
	NextSession string           `json:"nextSession,omitempty"`
}

func SummarizeBodyParts(set BodyPartSet, workouts []fitness.Workout, now time.Time) []BodyPartSummary {
	entries := set.Entries()
	summaries := make([]BodyPartSummary, 0, len(entries))
	for _, e := range entries {
		summaries = append(summaries, BodyPartSummary{
			Name:        e.BodyPart,
			Priority:    e.Priority,
			Progress:    WeeklyProgress(workouts, e.BodyPart, now),
			LastWorked:  LastWorkedLabel(workouts, e.BodyPart, now),
			Exercises:   ExercisesFor(e.BodyPart),
			NextSession: NextSession(e.Priority),
		})
	}
	return summaries
}

type Recommendation struct {
	Areas   []fitness.BodyPart `json:"areas"`
	Message string             `json:"message"`
	General bool               `json:"general"`
}

// Recommend names every high-priority body part, in input order. Without any
// it falls back to a general full body recommendation.
func Recommend(summaries []BodyPartSummary) Recommendation {
	var areas []fitness.BodyPart
	var names []string
	for _, s := range summaries {
		if s.Priority == fitness.PriorityHigh {
			areas = append(areas, s.Name)
			names = append(names, string(s.Name))
		}
	}

	if len(areas) == 0 {
		return Recommendation{
			Areas:   []fitness.BodyPart{fitness.FullBody},
			Message: "Focus on " + string(fitness.FullBody) + " today",
			General: true,
		}
	}

	return Recommendation{
		Areas:   areas,
		Message: "Focus on " + strings.Join(names, " and ") + " today",
	}
}

func ExercisesFor(part fitness.BodyPart) []string {
	switch part {
	case fitness.UpperBody:
		return []string{"Push-ups", "Pull-ups", "Shoulder Press"}
	case fitness.Core:
		return []string{"Planks", "Russian Twists", "Mountain Climbers"}
	case fitness.LowerBody:
		return []string{"Squats", "Lunges", "Calf Raises"}
	case fitness.Cardio:
		return []string{"Running", "Cycling", "Jump Rope"}
	case fitness.FullBody:
		return []string{"Burpees", "Deadlifts", "Kettlebell Swings"}
	default:
		return []string{"General Exercise"}
	}
}

func NextSession(priority fitness.Priority) string {
	switch priority {
	case fitness.PriorityHigh:
		return "Today"
	case fitness.PriorityMedium:
		return "Tomorrow"
	case fitness.PriorityLow:
		return "Day after tomorrow"
	default:
		return "This week"
	}
}

var epoch = time.Unix(0, 0).UTC()

// FocusToday picks the high-priority entry worked longest ago. A missing
// last-worked date counts as the epoch; ties keep the first entry.
func FocusToday(set BodyPartSet) fitness.BodyPart {
	focus := fitness.FullBody
	var focusDate time.Time
	found := false

	for _, e := range set.Entries() {
		if e.Priority != fitness.PriorityHigh {
			continue
		}
		lastWorked := epoch
		if e.LastWorkedDate != nil {
			lastWorked = *e.LastWorkedDate
		}
		if !found || lastWorked.Before(focusDate) {
			focus, focusDate, found = e.BodyPart, lastWorked, true
		}
	}

	return focus
}
