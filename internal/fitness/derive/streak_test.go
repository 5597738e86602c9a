package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/2beens/fitdash/internal/fitness"
)

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n).Add(-time.Hour)
}

func TestStreak(t *testing.T) {
	testCases := []struct {
		name     string
		days     []int
		expected int
	}{
		{name: "no workouts", days: nil, expected: 0},
		{name: "only today", days: []int{0}, expected: 1},
		{name: "today and yesterday", days: []int{0, 1}, expected: 2},
		{name: "missed today, trained yesterday", days: []int{1, 2, 3}, expected: 3},
		{name: "gap after today breaks", days: []int{0, 2, 3}, expected: 1},
		{name: "gap after yesterday breaks", days: []int{1, 3, 4}, expected: 1},
		{name: "missed today and yesterday", days: []int{2, 3}, expected: 0},
		{name: "two workouts same day count once", days: []int{0, 0, 1}, expected: 2},
		{name: "full week", days: []int{0, 1, 2, 3, 4, 5, 6}, expected: 7},
		{name: "capped at seven", days: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, expected: 7},
		{name: "six days without today", days: []int{1, 2, 3, 4, 5, 6, 7}, expected: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var workouts []fitness.Workout
			for _, d := range tc.days {
				workouts = append(workouts, workoutAt(daysAgo(d), fitness.Cardio))
			}
			got := Streak(workouts, testNow)
			assert.Equal(t, tc.expected, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 7)
		})
	}
}

func TestStreak_CalendarDaysNotElapsedTime(t *testing.T) {
	now := time.Date(2024, 5, 15, 0, 30, 0, 0, time.UTC)
	workouts := []fitness.Workout{
		// 40 minutes earlier, but on the previous calendar day
		workoutAt(time.Date(2024, 5, 14, 23, 50, 0, 0, time.UTC), fitness.Core),
	}
	assert.Equal(t, 1, Streak(workouts, now))
}
