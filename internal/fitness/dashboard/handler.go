package dashboard

import (
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitdash/internal/auth"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) (*Snapshot, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return nil, false
	}
	snap, err := h.service.Snapshot(r.Context(), userID)
	if err != nil {
		log.Errorf("load dashboard snapshot for %s: %s", userID, err)
		http.Error(w, "failed to load dashboard", http.StatusServiceUnavailable)
		return nil, false
	}
	return snap, true
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	d, err := h.service.Dashboard(ctx, userID)
	if err != nil {
		log.Errorf("load dashboard for %s: %s", userID, err)
		http.Error(w, "failed to load dashboard", http.StatusServiceUnavailable)
		return
	}

	pkg.WriteJSON(w, d, http.StatusOK)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.stats")
	defer span.End()

	snap, ok := h.snapshot(w, r.WithContext(ctx))
	if !ok {
		return
	}

	pkg.WriteJSON(w, StatsView(snap), http.StatusOK)
}

func (h *Handler) HandleWeeklyCalories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.weeklyCalories")
	defer span.End()

	snap, ok := h.snapshot(w, r.WithContext(ctx))
	if !ok {
		return
	}

	pkg.WriteJSON(w, WeeklyCaloriesView(snap), http.StatusOK)
}

func (h *Handler) HandleBodyParts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.bodyParts")
	defer span.End()

	detailed := false
	if detailedParam := r.URL.Query().Get("detailed"); detailedParam != "" {
		var err error
		detailed, err = strconv.ParseBool(detailedParam)
		if err != nil {
			http.Error(w, "invalid detailed param", http.StatusBadRequest)
			return
		}
	}

	snap, ok := h.snapshot(w, r.WithContext(ctx))
	if !ok {
		return
	}

	pkg.WriteJSON(w, BodyPartsFocusView(snap, detailed), http.StatusOK)
}

func (h *Handler) HandleRecentWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.recent")
	defer span.End()

	snap, ok := h.snapshot(w, r.WithContext(ctx))
	if !ok {
		return
	}

	pkg.WriteJSON(w, RecentWorkoutsView(snap), http.StatusOK)
}
