package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/2beens/fitdash/internal/fitness/dashboard"
)

type snapshotLoader interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (*dashboard.Snapshot, error)
}

// contextService provides dashboard context data for a user. Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*dashboard.Dashboard, error)
	GetWeeklyCalories(ctx context.Context, userID uuid.UUID) (*dashboard.WeeklyCaloriesResponse, error)
	GetBodyPartFocus(ctx context.Context, userID uuid.UUID, detailed bool) (*dashboard.BodyPartsResponse, error)
	GetRecentWorkouts(ctx context.Context, userID uuid.UUID) (*dashboard.RecentWorkoutsResponse, error)
}

// ContextService derives the dashboard views served as MCP tools.
type ContextService struct {
	schema    SchemaRepo
	snapshots snapshotLoader
}

func NewContextService(schemaRepo SchemaRepo, snapshots snapshotLoader) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		snapshots: snapshots,
	}
}

// GetSchema returns the column layout of workouts, daily_stats and body_part_progress as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetFitdashColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatFitdashSchema(cols), nil
}

func formatFitdashSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Fitdash DB Schema\n\nNo fitdash tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Fitdash DB Schema\n\n")
	b.WriteString("Tables: workouts, daily_stats, body_part_progress (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetDashboard(ctx context.Context, userID uuid.UUID) (*dashboard.Dashboard, error) {
	snap, err := s.snapshots.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	d := dashboard.Build(snap)
	return &d, nil
}

func (s *ContextService) GetWeeklyCalories(ctx context.Context, userID uuid.UUID) (*dashboard.WeeklyCaloriesResponse, error) {
	snap, err := s.snapshots.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := dashboard.WeeklyCaloriesView(snap)
	return &view, nil
}

func (s *ContextService) GetBodyPartFocus(ctx context.Context, userID uuid.UUID, detailed bool) (*dashboard.BodyPartsResponse, error) {
	snap, err := s.snapshots.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := dashboard.BodyPartsFocusView(snap, detailed)
	return &view, nil
}

func (s *ContextService) GetRecentWorkouts(ctx context.Context, userID uuid.UUID) (*dashboard.RecentWorkoutsResponse, error) {
	snap, err := s.snapshots.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := dashboard.RecentWorkoutsView(snap)
	return &view, nil
}
