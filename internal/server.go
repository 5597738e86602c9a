package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/fitdash/internal/auth"
	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/db"
	"github.com/2beens/fitdash/internal/fitness/bodyparts"
	"github.com/2beens/fitdash/internal/fitness/dailystats"
	"github.com/2beens/fitdash/internal/fitness/dashboard"
	fitnessmcp "github.com/2beens/fitdash/internal/fitness/mcp"
	"github.com/2beens/fitdash/internal/fitness/workouts"
	"github.com/2beens/fitdash/internal/middleware"
	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
)

const maxRequestBodyBytes = 64 * 1024

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	mcpSecret         string

	config        *config.Config
	dbPool        *pgxpool.Pool
	redisClient   *redis.Client
	tokenVerifier *auth.TokenVerifier

	workoutsRepo     *workouts.Repo
	dailyStatsRepo   *dailystats.Repo
	bodyPartsRepo    *bodyparts.Repo
	dashboardService *dashboard.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	JWTSecret               string
	MCPSecret               string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	if params.JWTSecret == "" {
		return nil, errors.New("jwt secret not set")
	}

	dbParams := db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		SSLMode:        params.Config.PostgresSSLMode,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if params.Config.MigrateOnStart {
		if err := db.Migrate(dbParams.ConnString()); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
		log.Debugln("db migrations applied")
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitdash", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitdash-backend", rdb)
	if err != nil {
		return nil, err
	}

	snapshotCache := dashboard.NewSnapshotCache(
		params.Config.QueryCacheSizeBytes,
		params.Config.QueryCacheTTL.Duration,
	)
	if snapshotCache == nil {
		log.Debugln("dashboard query cache disabled")
	}

	s := &Server{
		config:        params.Config,
		dbPool:        dbPool,
		redisClient:   rdb,
		versionInfo:   params.VersionInfo,
		mcpSecret:     params.MCPSecret,
		tokenVerifier: auth.NewTokenVerifier(params.JWTSecret, params.Config.JWTIssuer, params.Config.JWTAudience),

		workoutsRepo:   workouts.NewRepo(dbPool),
		dailyStatsRepo: dailystats.NewRepo(dbPool),
		bodyPartsRepo:  bodyparts.NewRepo(dbPool),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	s.dashboardService = dashboard.NewService(dashboard.NewServiceParams{
		WorkoutsRepo:   s.workoutsRepo,
		DailyStatsRepo: s.dailyStatsRepo,
		BodyPartsRepo:  s.bodyPartsRepo,
		Cache:          snapshotCache,
		Metrics:        metricsManager,
		RecentLimit:    params.Config.RecentWorkoutsLimit,
	})

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitdash-router"))

	var pinger dbPinger
	if s.dbPool != nil {
		pinger = s.dbPool
	}
	healthHandler := NewHealthHandler(pinger, s.redisClient, s.versionInfo)
	r.HandleFunc("/health", healthHandler.HandleHealth).Methods("GET").Name("health")

	dashboardHandler := dashboard.NewHandler(s.dashboardService)
	r.HandleFunc("/dashboard", dashboardHandler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	r.HandleFunc("/dashboard/stats", dashboardHandler.HandleStats).Methods("GET", "OPTIONS").Name("dashboard-stats")
	r.HandleFunc("/dashboard/calories/weekly", dashboardHandler.HandleWeeklyCalories).Methods("GET", "OPTIONS").Name("dashboard-weekly-calories")
	r.HandleFunc("/dashboard/bodyparts", dashboardHandler.HandleBodyParts).Methods("GET", "OPTIONS").Name("dashboard-bodyparts")
	r.HandleFunc("/workouts/recent", dashboardHandler.HandleRecentWorkouts).Methods("GET", "OPTIONS").Name("recent-workouts")

	var reqRateLimiter middleware.RequestRateLimiter
	if s.redisClient != nil {
		reqRateLimiter = redis_rate.NewLimiter(s.redisClient)
	}
	workoutsHandler := workouts.NewHandler(s.workoutsRepo, s.dashboardService, s.metricsManager, nil)
	r.Handle("/workouts", middleware.RateLimit(
		reqRateLimiter,
		s.metricsManager,
		"log-workout",
		s.config.LogWorkoutRateLimitPerMinute,
	)(http.HandlerFunc(workoutsHandler.HandleAdd))).Methods("POST", "OPTIONS").Name("log-workout")

	dailyStatsHandler := dailystats.NewHandler(s.dailyStatsRepo, s.dashboardService)
	r.HandleFunc("/daily-stats/{date}/goal", dailyStatsHandler.HandleSetGoal).Methods("PUT", "OPTIONS").Name("set-calorie-goal")

	bodyPartsHandler := bodyparts.NewHandler(s.bodyPartsRepo, s.dashboardService)
	r.HandleFunc("/body-parts/{name}", bodyPartsHandler.HandleSetPriority).Methods("PUT", "OPTIONS").Name("set-body-part-priority")

	if s.mcpSecret != "" {
		mcpServer := fitnessmcp.NewServer(fitnessmcp.NewPoolSchemaRepo(s.dbPool), s.dashboardService)
		mcpHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
			return mcpServer
		}, nil)
		r.PathPrefix("/mcp").Handler(mcpHandler).Name("mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenVerifier, s.mcpSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(maxRequestBodyBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop accepting requests before the stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
