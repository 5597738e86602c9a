package internal

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db          dbPinger
	redisClient *redis.Client
	versionInfo string
	timeout     time.Duration
}

type HealthResponse struct {
	Status  string `json:"status"`
	DB      string `json:"db"`
	Redis   string `json:"redis"`
	Version string `json:"version,omitempty"`
}

func NewHealthHandler(db dbPinger, redisClient *redis.Client, versionInfo string) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
		versionInfo: versionInfo,
		timeout:     2 * time.Second,
	}
}

// HandleHealth reports 200 only when both the DB and redis answer a ping.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	resp := HealthResponse{
		Status:  "ok",
		DB:      "ok",
		Redis:   "ok",
		Version: h.versionInfo,
	}

	if h.db == nil {
		resp.DB = "not configured"
		resp.Status = "degraded"
	} else if err := h.db.Ping(ctx); err != nil {
		log.Errorf("health: db ping: %s", err)
		resp.DB = "unreachable"
		resp.Status = "degraded"
	}

	if h.redisClient == nil {
		resp.Redis = "not configured"
		resp.Status = "degraded"
	} else if err := h.redisClient.Ping(ctx).Err(); err != nil {
		log.Errorf("health: redis ping: %s", err)
		resp.Redis = "unreachable"
		resp.Status = "degraded"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	pkg.WriteJSON(w, resp, status)
}
