// Package derive turns raw workout, daily stat and body-part configuration
// records into dashboard display values. All functions are pure: the current
// time is always passed in and calendar days are taken in now's location.
package derive

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fitdash/internal/fitness"
)

const (
	// SessionsPerWeekGoal is the number of sessions per body part that count as 100% weekly progress.
	SessionsPerWeekGoal = 3

	LabelNever     = "Never"
	LabelToday     = "Today"
	LabelYesterday = "Yesterday"

	day        = 24 * time.Hour
	weekWindow = 7 * day
)

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// RelativeDayLabel renders t relative to now: "Today", "Yesterday" or "<N> days ago",
// N being the number of whole 24h periods elapsed. Timestamps later than now count as today.
func RelativeDayLabel(t, now time.Time) string {
	loc := now.Location()
	today := startOfDay(now, loc)
	tDay := startOfDay(t, loc)

	switch {
	case !tDay.Before(today):
		return LabelToday
	case tDay.Equal(today.AddDate(0, 0, -1)):
		return LabelYesterday
	default:
		return fmt.Sprintf("%d days ago", int(now.Sub(t)/day))
	}
}

// LastWorkedLabel labels the most recent workout carrying part, or "Never".
func LastWorkedLabel(workouts []fitness.Workout, part fitness.BodyPart, now time.Time) string {
	var last *fitness.Workout
	for i := range workouts {
		w := &workouts[i]
		if !w.HasBodyPart(part) {
			continue
		}
		if last == nil || w.CompletedAt.After(last.CompletedAt) {
			last = w
		}
	}
	if last == nil {
		return LabelNever
	}
	return RelativeDayLabel(last.CompletedAt, now)
}

// WeeklyProgress is the share of SessionsPerWeekGoal reached by workouts tagged
// with part completed at or after now-7d, capped at 100.
func WeeklyProgress(workouts []fitness.Workout, part fitness.BodyPart, now time.Time) float64 {
	cutoff := now.Add(-weekWindow)
	count := 0
	for _, w := range workouts {
		if w.HasBodyPart(part) && !w.CompletedAt.Before(cutoff) {
			count++
		}
	}
	return min(float64(count)/SessionsPerWeekGoal*100, 100)
}

type RecentWorkout struct {
	fitness.Workout
	When string `json:"when"`
}

// RecentWorkouts orders workouts newest first and labels each with its relative day.
func RecentWorkouts(workouts []fitness.Workout, now time.Time) []RecentWorkout {
	sorted := make([]fitness.Workout, len(workouts))
	copy(sorted, workouts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})

	recent := make([]RecentWorkout, 0, len(sorted))
	for _, w := range sorted {
		recent = append(recent, RecentWorkout{
			Workout: w,
			When:    RelativeDayLabel(w.CompletedAt, now),
		})
	}
	return recent
}
