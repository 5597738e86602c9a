// Package dashboard loads a user's dashboard data and derives the display values.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/fitdash/internal/fitness"
	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

const (
	QueryDailyStats       = "dailyStats"
	QueryRecentWorkouts   = "recentWorkouts"
	QueryWeeklyCalories   = "weeklyCalories"
	QueryBodyPartProgress = "bodyPartProgress"
)

// Queries lists the independent read queries behind a dashboard.
var Queries = []string{QueryDailyStats, QueryRecentWorkouts, QueryWeeklyCalories, QueryBodyPartProgress}

var ErrRefreshIncomplete = errors.New("dashboard refresh incomplete")

type workoutsRepo interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]fitness.Workout, error)
}

type dailyStatsRepo interface {
	GetForDate(ctx context.Context, userID uuid.UUID, date time.Time) (*fitness.DailyStat, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]fitness.DailyStat, error)
}

type bodyPartsRepo interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]fitness.BodyPartProgress, error)
}

// Snapshot is the immutable result of one round of dashboard queries.
// A failed query leaves its field empty and is named in Unavailable.
type Snapshot struct {
	UserID         uuid.UUID
	Now            time.Time
	Today          *fitness.DailyStat
	RecentWorkouts []fitness.Workout
	WeekStats      []fitness.DailyStat
	BodyParts      []fitness.BodyPartProgress
	Unavailable    []string
}

type Service struct {
	workouts    workoutsRepo
	dailyStats  dailyStatsRepo
	bodyParts   bodyPartsRepo
	cache       *SnapshotCache
	metrics     *metrics.Manager
	recentLimit int
	now         func() time.Time
}

type NewServiceParams struct {
	WorkoutsRepo   workoutsRepo
	DailyStatsRepo dailyStatsRepo
	BodyPartsRepo  bodyPartsRepo
	Cache          *SnapshotCache
	Metrics        *metrics.Manager
	RecentLimit    int
	Now            func() time.Time
}

func NewService(params NewServiceParams) *Service {
	if params.RecentLimit <= 0 {
		params.RecentLimit = fitness.RecentWorkoutsLimit
	}
	if params.Now == nil {
		params.Now = func() time.Time { return time.Now().UTC() }
	}
	if params.Metrics == nil {
		// not exported anywhere
		params.Metrics = metrics.NewManager("fitdash", "dashboard", prometheus.NewRegistry())
	}
	return &Service{
		workouts:    params.WorkoutsRepo,
		dailyStats:  params.DailyStatsRepo,
		bodyParts:   params.BodyPartsRepo,
		cache:       params.Cache,
		metrics:     params.Metrics,
		recentLimit: params.RecentLimit,
		now:         params.Now,
	}
}

func fetch[T any](
	ctx context.Context,
	s *Service,
	userID uuid.UUID,
	query, day string,
	load func(ctx context.Context) (T, error),
) (T, error) {
	var cached T
	if s.cache.Get(userID, query, day, &cached) {
		s.metrics.CounterCacheHits.WithLabelValues(query).Inc()
		return cached, nil
	}
	if s.cache != nil {
		s.metrics.CounterCacheMisses.WithLabelValues(query).Inc()
	}

	gen := s.cache.Generation(userID)
	v, err := load(ctx)
	if err != nil {
		s.metrics.CounterFetchFailures.WithLabelValues(query).Inc()
		var zero T
		return zero, fmt.Errorf("%s: %w", query, err)
	}
	s.cache.Set(userID, query, day, gen, v)
	return v, nil
}

// Snapshot runs the dashboard queries concurrently. Individual query failures
// never fail the snapshot; only a done ctx does.
func (s *Service) Snapshot(ctx context.Context, userID uuid.UUID) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	now := s.now()
	today := fitness.CalendarDate(now)
	weekStart := today.AddDate(0, 0, -6)
	day := today.Format(fitness.DateLayout)

	snap := &Snapshot{
		UserID: userID,
		Now:    now,
	}
	errs := make([]error, len(Queries))

	var g errgroup.Group
	g.Go(func() error {
		snap.Today, errs[0] = fetch(ctx, s, userID, QueryDailyStats, day,
			func(ctx context.Context) (*fitness.DailyStat, error) {
				return s.dailyStats.GetForDate(ctx, userID, today)
			})
		return nil
	})
	g.Go(func() error {
		snap.RecentWorkouts, errs[1] = fetch(ctx, s, userID, QueryRecentWorkouts, day,
			func(ctx context.Context) ([]fitness.Workout, error) {
				return s.workouts.ListRecent(ctx, userID, s.recentLimit)
			})
		return nil
	})
	g.Go(func() error {
		snap.WeekStats, errs[2] = fetch(ctx, s, userID, QueryWeeklyCalories, day,
			func(ctx context.Context) ([]fitness.DailyStat, error) {
				return s.dailyStats.ListRange(ctx, userID, weekStart, today)
			})
		return nil
	})
	g.Go(func() error {
		snap.BodyParts, errs[3] = fetch(ctx, s, userID, QueryBodyPartProgress, day,
			func(ctx context.Context) ([]fitness.BodyPartProgress, error) {
				return s.bodyParts.ListForUser(ctx, userID)
			})
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, qErr := range errs {
		if qErr == nil {
			continue
		}
		log.Warnf("dashboard for %s, query failed: %s", userID, qErr)
		snap.Unavailable = append(snap.Unavailable, Queries[i])
	}
	if len(snap.Unavailable) > 0 {
		span.SetAttributes(attribute.StringSlice("unavailable", snap.Unavailable))
	}

	return snap, nil
}

// Dashboard loads a snapshot and derives the full dashboard from it.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	start := time.Now()
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	d := Build(snap)
	s.metrics.HistDashboardBuild.Observe(time.Since(start).Seconds())
	return &d, nil
}

// Refresh drops the user's cached query results for today and loads them again.
func (s *Service) Refresh(ctx context.Context, userID uuid.UUID) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.refresh")
	defer span.End()

	s.cache.Invalidate(userID, fitness.CalendarDate(s.now()).Format(fitness.DateLayout))

	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}
	if len(snap.Unavailable) > 0 {
		return fmt.Errorf("%w: %s unavailable", ErrRefreshIncomplete, strings.Join(snap.Unavailable, ", "))
	}
	return nil
}
