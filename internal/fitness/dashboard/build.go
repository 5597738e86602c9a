package dashboard

import (
	"time"

	"github.com/2beens/fitdash/internal/fitness"
	"github.com/2beens/fitdash/internal/fitness/derive"
)

type Stats struct {
	TodayCalories derive.CalorieProgress `json:"todayCalories"`
	WeeklyGoal    derive.CalorieProgress `json:"weeklyGoal"`
	Streak        int                    `json:"streak"`
	FocusToday    fitness.BodyPart       `json:"focusToday"`
}

type BodyPartsView struct {
	Source         string                   `json:"source"`
	BodyParts      []derive.BodyPartSummary `json:"bodyParts"`
	Recommendation derive.Recommendation    `json:"recommendation"`
}

type Dashboard struct {
	GeneratedAt    time.Time              `json:"generatedAt"`
	Stats          Stats                  `json:"stats"`
	WeeklyCalories []derive.DayCalories   `json:"weeklyCalories"`
	BodyParts      BodyPartsView          `json:"bodyParts"`
	RecentWorkouts []derive.RecentWorkout `json:"recentWorkouts"`
	Unavailable    []string               `json:"unavailable"`
}

func BuildStats(snap *Snapshot) Stats {
	return Stats{
		TodayCalories: derive.TodayCalories(snap.Today),
		WeeklyGoal:    derive.WeeklyCalorieSummary(derive.WeeklyCalories(snap.WeekStats, snap.Now)),
		Streak:        derive.Streak(snap.RecentWorkouts, snap.Now),
		FocusToday:    derive.FocusToday(derive.ResolveBodyParts(snap.BodyParts)),
	}
}

// BuildBodyParts summarizes the resolved body-part set. Without detailed the
// exercises and next session hints are left out.
func BuildBodyParts(snap *Snapshot, detailed bool) BodyPartsView {
	set := derive.ResolveBodyParts(snap.BodyParts)
	summaries := derive.SummarizeBodyParts(set, snap.RecentWorkouts, snap.Now)
	view := BodyPartsView{
		Source:         set.Source(),
		Recommendation: derive.Recommend(summaries),
	}
	if !detailed {
		for i := range summaries {
			summaries[i].Exercises = nil
			summaries[i].NextSession = ""
		}
	}
	view.BodyParts = summaries
	return view
}

// Build derives every dashboard value from snap.
func Build(snap *Snapshot) Dashboard {
	return Dashboard{
		GeneratedAt:    snap.Now,
		Stats:          BuildStats(snap),
		WeeklyCalories: derive.WeeklyCalories(snap.WeekStats, snap.Now),
		BodyParts:      BuildBodyParts(snap, true),
		RecentWorkouts: derive.RecentWorkouts(snap.RecentWorkouts, snap.Now),
		Unavailable:    unavailableOrEmpty(snap.Unavailable),
	}
}

func unavailableOrEmpty(u []string) []string {
	if u == nil {
		return []string{}
	}
	return u
}

type StatsResponse struct {
	Stats
	Unavailable []string `json:"unavailable"`
}

type WeeklyCaloriesResponse struct {
	Days        []derive.DayCalories   `json:"days"`
	Summary     derive.CalorieProgress `json:"summary"`
	Unavailable []string               `json:"unavailable"`
}

type BodyPartsResponse struct {
	BodyPartsView
	Unavailable []string `json:"unavailable"`
}

type RecentWorkoutsResponse struct {
	Workouts    []derive.RecentWorkout `json:"workouts"`
	Unavailable []string               `json:"unavailable"`
}

func StatsView(snap *Snapshot) StatsResponse {
	return StatsResponse{
		Stats:       BuildStats(snap),
		Unavailable: unavailableOrEmpty(snap.Unavailable),
	}
}

func WeeklyCaloriesView(snap *Snapshot) WeeklyCaloriesResponse {
	days := derive.WeeklyCalories(snap.WeekStats, snap.Now)
	return WeeklyCaloriesResponse{
		Days:        days,
		Summary:     derive.WeeklyCalorieSummary(days),
		Unavailable: unavailableOrEmpty(snap.Unavailable),
	}
}

func BodyPartsFocusView(snap *Snapshot, detailed bool) BodyPartsResponse {
	return BodyPartsResponse{
		BodyPartsView: BuildBodyParts(snap, detailed),
		Unavailable:   unavailableOrEmpty(snap.Unavailable),
	}
}

func RecentWorkoutsView(snap *Snapshot) RecentWorkoutsResponse {
	return RecentWorkoutsResponse{
		Workouts:    derive.RecentWorkouts(snap.RecentWorkouts, snap.Now),
		Unavailable: unavailableOrEmpty(snap.Unavailable),
	}
}
