package workouts

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitdash/internal/auth"
	"github.com/2beens/fitdash/internal/fitness"
	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout fitness.Workout) (*fitness.Workout, error)
}

// dashboardRefresher drops cached dashboard data after a write and loads it again.
type dashboardRefresher interface {
	Refresh(ctx context.Context, userID uuid.UUID) error
}

type Handler struct {
	repo      workoutsRepo
	refresher dashboardRefresher
	metrics   *metrics.Manager
	now       func() time.Time
}

func NewHandler(
	repo workoutsRepo,
	refresher dashboardRefresher,
	metricsManager *metrics.Manager,
	now func() time.Time,
) *Handler {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Handler{
		repo:      repo,
		refresher: refresher,
		metrics:   metricsManager,
		now:       now,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}
	span.SetAttributes(attribute.String("user.id", userID.String()))

	form, err := ParseForm(r)
	if err != nil {
		log.Debugf("add workout, parse form: %s", err)
		http.Error(w, "invalid workout form", http.StatusBadRequest)
		return
	}

	workout, err := form.Workout(userID, h.now())
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			pkg.WriteJSON(w, validationErr, http.StatusBadRequest)
			return
		}
		http.Error(w, "invalid workout form", http.StatusBadRequest)
		return
	}

	added, err := h.repo.Add(ctx, workout)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			log.Warnf("add workout for %s rejected by db: %s", userID, err)
			http.Error(w, "workout rejected", http.StatusBadRequest)
			return
		}
		if pkg.IsUniqueViolationError(err) {
			log.Debugf("workout %s of %s already logged", workout.ID, userID)
			http.Error(w, "workout already logged", http.StatusConflict)
			return
		}
		h.metrics.CounterWorkoutLogFailures.Inc()
		log.Errorf("add workout for %s: %s", userID, err)
		http.Error(w, "failed to log workout", http.StatusInternalServerError)
		return
	}
	h.metrics.CounterWorkoutsLogged.Inc()

	if err := h.refresher.Refresh(ctx, userID); err != nil {
		log.Warnf("refresh dashboard after new workout for %s: %s", userID, err)
	}

	log.Debugf("new workout added: %s", added.ID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}
