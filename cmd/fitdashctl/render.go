package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/2beens/fitdash/internal/fitness"
	"github.com/2beens/fitdash/internal/fitness/dashboard"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.FgWhite, color.Bold)
	warnColor   = color.New(color.FgYellow)
)

const barWidth = 20

func printDashboard(w io.Writer, d dashboard.Dashboard) {
	headerColor.Fprintf(w, "== FITDASH %s ==\n", d.GeneratedAt.Format(fitness.DateLayout))

	if len(d.Unavailable) > 0 {
		warnColor.Fprintf(w, "unavailable: %s\n", strings.Join(d.Unavailable, ", "))
	}

	st := d.Stats
	printMetric(w, "Today", fmt.Sprintf("%d / %d kcal (%d to go) %s",
		st.TodayCalories.Burned, st.TodayCalories.Goal, st.TodayCalories.Remaining, bar(st.TodayCalories.Percent)))
	printMetric(w, "Week", fmt.Sprintf("%d / %d kcal %s",
		st.WeeklyGoal.Burned, st.WeeklyGoal.Goal, bar(st.WeeklyGoal.Percent)))
	printMetric(w, "Streak", fmt.Sprintf("%d days", st.Streak))
	printMetric(w, "Focus today", string(st.FocusToday))
	fmt.Fprintln(w)

	headerColor.Fprintln(w, "Calories (last 7 days)")
	for _, day := range d.WeeklyCalories {
		fmt.Fprintf(w, "  %s %s %5d / %d\n", day.Day, day.Date, day.Calories, day.Goal)
	}
	fmt.Fprintln(w)

	headerColor.Fprintf(w, "Body parts (%s)\n", d.BodyParts.Source)
	for _, bp := range d.BodyParts.BodyParts {
		fmt.Fprintf(w, "  %-10s %-6s %s %3.0f%%  last: %s\n",
			bp.Name, priorityColor(bp.Priority).Sprint(bp.Priority), bar(bp.Progress), bp.Progress, bp.LastWorked)
	}
	labelColor.Fprintf(w, "  %s\n", d.BodyParts.Recommendation.Message)
	fmt.Fprintln(w)

	headerColor.Fprintln(w, "Recent workouts")
	if len(d.RecentWorkouts) == 0 {
		fmt.Fprintln(w, "  none yet")
	}
	for _, rw := range d.RecentWorkouts {
		fmt.Fprintf(w, "  %-12s %-24s %3d min %5d kcal\n", rw.When, rw.Name, rw.DurationMinutes, rw.CaloriesBurned)
	}
}

func printMetric(w io.Writer, label, value string) {
	labelColor.Fprintf(w, "%-12s", label+":")
	fmt.Fprintf(w, " %s\n", value)
}

func priorityColor(p fitness.Priority) *color.Color {
	switch p {
	case fitness.PriorityHigh:
		return color.New(color.FgRed)
	case fitness.PriorityMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// bar renders percent (0..100) as a fixed width gauge.
func bar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	filled = min(max(filled, 0), barWidth)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}
