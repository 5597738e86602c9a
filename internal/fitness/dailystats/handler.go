package dailystats

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitdash/internal/auth"
	"github.com/2beens/fitdash/internal/fitness"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=dailystats_mocks_test.go -package=dailystats_test

type dailyStatsRepo interface {
	UpsertGoal(ctx context.Context, userID uuid.UUID, date time.Time, goal int) (*fitness.DailyStat, error)
}

type dashboardRefresher interface {
	Refresh(ctx context.Context, userID uuid.UUID) error
}

type GoalRequest struct {
	Goal int `json:"goal"`
}

type Handler struct {
	repo      dailyStatsRepo
	refresher dashboardRefresher
}

func NewHandler(repo dailyStatsRepo, refresher dashboardRefresher) *Handler {
	return &Handler{
		repo:      repo,
		refresher: refresher,
	}
}

func (h *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailystats.setGoal")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	date, err := fitness.ParseDate(vars["date"])
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("date", date.Format(fitness.DateLayout)))

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("set calorie goal, unmarshal json params: %s", err)
		http.Error(w, "invalid goal request", http.StatusBadRequest)
		return
	}
	if req.Goal < 1 {
		http.Error(w, "goal must be at least 1", http.StatusBadRequest)
		return
	}

	stat, err := h.repo.UpsertGoal(ctx, userID, date, req.Goal)
	if err != nil {
		log.Errorf("set calorie goal for %s on %s: %s", userID, vars["date"], err)
		http.Error(w, "failed to set calorie goal", http.StatusInternalServerError)
		return
	}

	if err := h.refresher.Refresh(ctx, userID); err != nil {
		log.Warnf("refresh dashboard after goal update for %s: %s", userID, err)
	}

	pkg.WriteJSON(w, stat, http.StatusOK)
}
