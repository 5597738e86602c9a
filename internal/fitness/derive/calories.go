package derive

import (
	"time"

	"github.com/2beens/fitdash/internal/fitness"
)

const weekDays = 7

type DayCalories struct {
	Date     string `json:"date"`
	Day      string `json:"day"`
	Calories int    `json:"calories"`
	Goal     int    `json:"goal"`
}

// WeeklyCalories returns exactly seven entries, today-6 through today. Days
// without a stat get 0 calories and the default goal.
func WeeklyCalories(stats []fitness.DailyStat, now time.Time) []DayCalories {
	byDate := make(map[string]fitness.DailyStat, len(stats))
	for _, s := range stats {
		if _, ok := byDate[s.DateKey()]; !ok {
			byDate[s.DateKey()] = s
		}
	}

	today := startOfDay(now, now.Location())
	series := make([]DayCalories, 0, weekDays)
	for i := weekDays - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		entry := DayCalories{
			Date:     d.Format(fitness.DateLayout),
			Day:      d.Weekday().String()[:3],
			Calories: 0,
			Goal:     fitness.DefaultCalorieGoal,
		}
		if s, ok := byDate[entry.Date]; ok {
			entry.Calories = s.CaloriesBurned
			entry.Goal = s.CalorieGoal
		}
		series = append(series, entry)
	}
	return series
}

type CalorieProgress struct {
	Burned    int     `json:"burned"`
	Goal      int     `json:"goal"`
	Remaining int     `json:"remaining"`
	Percent   float64 `json:"percent"`
}

func newCalorieProgress(burned, goal int) CalorieProgress {
	p := CalorieProgress{
		Burned:    burned,
		Goal:      goal,
		Remaining: max(goal-burned, 0),
	}
	switch {
	case goal > 0:
		p.Percent = min(float64(burned)/float64(goal)*100, 100)
	case burned > 0:
		p.Percent = 100
	}
	return p
}

// TodayCalories reads today's stat; nil means no row yet, or a failed fetch.
func TodayCalories(today *fitness.DailyStat) CalorieProgress {
	if today == nil {
		return newCalorieProgress(0, fitness.DefaultCalorieGoal)
	}
	return newCalorieProgress(today.CaloriesBurned, today.CalorieGoal)
}

// WeeklyCalorieSummary totals a WeeklyCalories series.
func WeeklyCalorieSummary(series []DayCalories) CalorieProgress {
	burned, goal := 0, 0
	for _, d := range series {
		burned += d.Calories
		goal += d.Goal
	}
	return newCalorieProgress(burned, goal)
}
