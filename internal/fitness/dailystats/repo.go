package dailystats

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// GetForDate returns nil without an error when the user has no stat for date.
func (r *Repo) GetForDate(ctx context.Context, userID uuid.UUID, date time.Time) (_ *fitness.DailyStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailystats.getForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("date", date.Format(fitness.DateLayout)))

	stat := fitness.DailyStat{}
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT user_id, date, calories_burned, calorie_goal
			FROM daily_stats
			WHERE user_id = $1 AND date = $2;`,
		userID, fitness.CalendarDate(date),
	).Scan(&stat.UserID, &stat.Date, &stat.CaloriesBurned, &stat.CalorieGoal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &stat, nil
}

// ListRange returns stats with from <= date <= to, oldest first.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []fitness.DailyStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailystats.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("from", from.Format(fitness.DateLayout)))
	span.SetAttributes(attribute.String("to", to.Format(fitness.DateLayout)))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT user_id, date, calories_burned, calorie_goal
			FROM daily_stats
			WHERE user_id = $1 AND date >= $2 AND date <= $3
			ORDER BY date ASC;`,
		userID, fitness.CalendarDate(from), fitness.CalendarDate(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []fitness.DailyStat
	for rows.Next() {
		var stat fitness.DailyStat
		if err := rows.Scan(&stat.UserID, &stat.Date, &stat.CaloriesBurned, &stat.CalorieGoal); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// UpsertGoal sets the calorie goal for date, creating the day with zero calories if needed.
func (r *Repo) UpsertGoal(ctx context.Context, userID uuid.UUID, date time.Time, goal int) (_ *fitness.DailyStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailystats.upsertGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("date", date.Format(fitness.DateLayout)))
	span.SetAttributes(attribute.Int("goal", goal))

	stat := fitness.DailyStat{}
	if err := r.db.QueryRow(
		ctx,
		`
			INSERT INTO daily_stats (user_id, date, calories_burned, calorie_goal)
			VALUES ($1, $2, 0, $3)
			ON CONFLICT (user_id, date) DO UPDATE SET calorie_goal = EXCLUDED.calorie_goal
			RETURNING user_id, date, calories_burned, calorie_goal;`,
		userID, fitness.CalendarDate(date), goal,
	).Scan(&stat.UserID, &stat.Date, &stat.CaloriesBurned, &stat.CalorieGoal); err != nil {
		return nil, err
	}

	return &stat, nil
}
