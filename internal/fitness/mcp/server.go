package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing the derived dashboard of a user.
// Used by cmd/fitness_mcp over stdio and mounted by the backend at /mcp.
func NewServer(schemaRepo SchemaRepo, snapshots snapshotLoader) *mcp.Server {
	h := NewHandler(NewContextService(schemaRepo, snapshots))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitdash-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitdash_schema",
		Description: "Returns the DB schema of the fitdash tables (workouts, daily_stats, body_part_progress): columns, types, nullable, default.",
	}, h.GetFitdashSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Returns the full derived dashboard of a user: today's calories, weekly goal, streak, focus today, 7-day calorie series, body-part summaries with the recommendation and recent workouts. Arg: user_id (UUID).",
	}, h.GetDashboardTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_calories",
		Description: "Returns the last 7 days of burned calories and goals (oldest first, missing days filled with 0 / 600) and the weekly total. Arg: user_id (UUID).",
	}, h.GetWeeklyCaloriesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_body_part_focus",
		Description: "Returns per body part priority, weekly progress and last worked label, plus which areas to focus on today. Args: user_id (UUID); optional detailed adds exercises and next session.",
	}, h.GetBodyPartFocusTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_recent_workouts",
		Description: "Returns the user's latest workouts, newest first, each labeled Today, Yesterday or N days ago. Arg: user_id (UUID).",
	}, h.GetRecentWorkoutsTool())

	return s
}
