package bodyparts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
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

func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) (_ []fitness.BodyPartProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyparts.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT user_id, body_part, priority, last_worked_date
			FROM body_part_progress
			WHERE user_id = $1
			ORDER BY body_part ASC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var progress []fitness.BodyPartProgress
	for rows.Next() {
		var p fitness.BodyPartProgress
		var bodyPart, priority string
		if err := rows.Scan(&p.UserID, &bodyPart, &priority, &p.LastWorkedDate); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		p.BodyPart = fitness.BodyPart(bodyPart)
		p.Priority = fitness.Priority(priority)
		progress = append(progress, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return progress, nil
}

// UpsertPriority creates the configuration row if missing, keeping any last worked date.
func (r *Repo) UpsertPriority(
	ctx context.Context,
	userID uuid.UUID,
	part fitness.BodyPart,
	priority fitness.Priority,
) (_ *fitness.BodyPartProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyparts.upsertPriority")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("body_part", string(part)))
	span.SetAttributes(attribute.String("priority", string(priority)))

	p := fitness.BodyPartProgress{}
	var bodyPart, pr string
	if err := r.db.QueryRow(
		ctx,
		`
			INSERT INTO body_part_progress (user_id, body_part, priority)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, body_part) DO UPDATE SET priority = EXCLUDED.priority
			RETURNING user_id, body_part, priority, last_worked_date;`,
		userID, string(part), string(priority),
	).Scan(&p.UserID, &bodyPart, &pr, &p.LastWorkedDate); err != nil {
		return nil, err
	}
	p.BodyPart = fitness.BodyPart(bodyPart)
	p.Priority = fitness.Priority(pr)

	return &p, nil
}
