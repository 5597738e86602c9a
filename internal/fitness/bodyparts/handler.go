package bodyparts

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitdash/internal/auth"
	"github.com/2beens/fitdash/internal/fitness"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=bodyparts_mocks_test.go -package=bodyparts_test

type bodyPartsRepo interface {
	UpsertPriority(ctx context.Context, userID uuid.UUID, part fitness.BodyPart, priority fitness.Priority) (*fitness.BodyPartProgress, error)
}

type dashboardRefresher interface {
	Refresh(ctx context.Context, userID uuid.UUID) error
}

type PriorityRequest struct {
	Priority string `json:"priority"`
}

type Handler struct {
	repo      bodyPartsRepo
	refresher dashboardRefresher
}

func NewHandler(repo bodyPartsRepo, refresher dashboardRefresher) *Handler {
	return &Handler{
		repo:      repo,
		refresher: refresher,
	}
}

// HandleSetPriority accepts the body part name as-is or with dashes for spaces (upper-body).
func (h *Handler) HandleSetPriority(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyparts.setPriority")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	part, err := fitness.ParseBodyPart(strings.ReplaceAll(vars["name"], "-", " "))
	if err != nil {
		http.Error(w, "unknown body part", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("body_part", string(part)))

	var req PriorityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("set body part priority, unmarshal json params: %s", err)
		http.Error(w, "invalid priority request", http.StatusBadRequest)
		return
	}
	priority, err := fitness.ParsePriority(req.Priority)
	if err != nil {
		http.Error(w, "priority must be one of low, medium, high", http.StatusBadRequest)
		return
	}

	progress, err := h.repo.UpsertPriority(ctx, userID, part, priority)
	if err != nil {
		log.Errorf("set priority of %s for %s: %s", part, userID, err)
		http.Error(w, "failed to set body part priority", http.StatusInternalServerError)
		return
	}

	if err := h.refresher.Refresh(ctx, userID); err != nil {
		log.Warnf("refresh dashboard after priority update for %s: %s", userID, err)
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}
