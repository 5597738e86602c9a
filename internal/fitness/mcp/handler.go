package mcp

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// UserInput is the input of the per-user dashboard tools.
type UserInput struct {
	UserID string `json:"user_id" jsonschema:"User id (UUID) whose dashboard to read"`
}

// BodyPartFocusInput is the input for get_body_part_focus.
type BodyPartFocusInput struct {
	UserID   string `json:"user_id" jsonschema:"User id (UUID) whose dashboard to read"`
	Detailed bool   `json:"detailed,omitempty" jsonschema:"Include suggested exercises and next session per body part"`
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func parseUserID(raw string) (uuid.UUID, *mcp.CallToolResult) {
	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, errorResult("Invalid user_id: use a UUID")
	}
	return userID, nil
}

// GetFitdashSchemaTool returns the MCP tool handler for get_fitdash_schema.
func (h *Handler) GetFitdashSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// GetDashboardTool returns the MCP tool handler for get_dashboard.
func (h *Handler) GetDashboardTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, errRes := parseUserID(in.UserID)
		if errRes != nil {
			return errRes, nil, nil
		}
		d, err := h.service.GetDashboard(ctx, userID)
		if err != nil {
			return errorResult("Error loading dashboard: " + err.Error()), nil, nil
		}
		return jsonResult(d), nil, nil
	}
}

// GetWeeklyCaloriesTool returns the MCP tool handler for get_weekly_calories.
func (h *Handler) GetWeeklyCaloriesTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, errRes := parseUserID(in.UserID)
		if errRes != nil {
			return errRes, nil, nil
		}
		weekly, err := h.service.GetWeeklyCalories(ctx, userID)
		if err != nil {
			return errorResult("Error loading weekly calories: " + err.Error()), nil, nil
		}
		return jsonResult(weekly), nil, nil
	}
}

// GetBodyPartFocusTool returns the MCP tool handler for get_body_part_focus.
func (h *Handler) GetBodyPartFocusTool() func(context.Context, *mcp.CallToolRequest, BodyPartFocusInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in BodyPartFocusInput) (*mcp.CallToolResult, any, error) {
		userID, errRes := parseUserID(in.UserID)
		if errRes != nil {
			return errRes, nil, nil
		}
		focus, err := h.service.GetBodyPartFocus(ctx, userID, in.Detailed)
		if err != nil {
			return errorResult("Error loading body part focus: " + err.Error()), nil, nil
		}
		return jsonResult(focus), nil, nil
	}
}

// GetRecentWorkoutsTool returns the MCP tool handler for get_recent_workouts.
func (h *Handler) GetRecentWorkoutsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, errRes := parseUserID(in.UserID)
		if errRes != nil {
			return errRes, nil, nil
		}
		recent, err := h.service.GetRecentWorkouts(ctx, userID)
		if err != nil {
			return errorResult("Error loading recent workouts: " + err.Error()), nil, nil
		}
		return jsonResult(recent), nil, nil
	}
}
