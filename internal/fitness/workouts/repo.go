package workouts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitdash/internal/fitness"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout fitness.Workout) (_ *fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workout.ID.String()))
	span.SetAttributes(attribute.String("user.id", workout.UserID.String()))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workouts
				(id, user_id, name, duration_minutes, calories_burned, difficulty, notes, body_parts, completed_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, user_id, name, duration_minutes, calories_burned, difficulty, notes, body_parts, completed_at;`,
		workout.ID, workout.UserID, workout.Name, workout.DurationMinutes, workout.CaloriesBurned,
		string(workout.Difficulty), workout.Notes, bodyPartsToStrings(workout.BodyParts), workout.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	added, err := rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(added) != 1 {
		return nil, fmt.Errorf("unexpected number of inserted rows: %d", len(added))
	}

	return &added[0], nil
}

// ListRecent returns the user's latest workouts, newest first.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) (_ []fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listRecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, name, duration_minutes, calories_burned, difficulty, notes, body_parts, completed_at
			FROM workouts
			WHERE user_id = $1
			ORDER BY completed_at DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2workouts(rows)
}

func rows2workouts(rows pgx.Rows) ([]fitness.Workout, error) {
	var workouts []fitness.Workout
	for rows.Next() {
		var w fitness.Workout
		var difficulty string
		var bodyParts []string
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Name, &w.DurationMinutes, &w.CaloriesBurned,
			&difficulty, &w.Notes, &bodyParts, &w.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		w.Difficulty = fitness.Difficulty(difficulty)
		w.BodyParts = make([]fitness.BodyPart, 0, len(bodyParts))
		for _, p := range bodyParts {
			w.BodyParts = append(w.BodyParts, fitness.BodyPart(p))
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

func bodyPartsToStrings(parts []fitness.BodyPart) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, string(p))
	}
	return out
}
