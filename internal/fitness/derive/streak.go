package derive

import (
	"time"

	"github.com/2beens/fitdash/internal/fitness"
)

const maxStreakDays = 7

// Streak counts consecutive workout days looking back from today, at most 7.
// A day without workouts ends the streak, except today which may still be
// trained later.
func Streak(workouts []fitness.Workout, now time.Time) int {
	loc := now.Location()
	workedDays := make(map[string]bool, len(workouts))
	for _, w := range workouts {
		workedDays[startOfDay(w.CompletedAt, loc).Format(fitness.DateLayout)] = true
	}

	today := startOfDay(now, loc)
	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		if workedDays[today.AddDate(0, 0, -i).Format(fitness.DateLayout)] {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}
