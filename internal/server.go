package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fittrackhq/fittrack/internal/auth"
	"github.com/fittrackhq/fittrack/internal/config"
	"github.com/fittrackhq/fittrack/internal/db"
	"github.com/fittrackhq/fittrack/internal/insights"
	"github.com/fittrackhq/fittrack/internal/middleware"
	"github.com/fittrackhq/fittrack/internal/misc"
	"github.com/fittrackhq/fittrack/internal/nutrition"
	"github.com/fittrackhq/fittrack/internal/posture"
	"github.com/fittrackhq/fittrack/internal/progress"
	"github.com/fittrackhq/fittrack/internal/stats"
	"github.com/fittrackhq/fittrack/internal/telemetry/metrics"
	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"
	"github.com/fittrackhq/fittrack/internal/wearable"
	"github.com/fittrackhq/fittrack/internal/workouts"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	mobileAppSecret   string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	statsService   *stats.Service
	insightsClient *insights.Client
	wearableSyncer *wearable.Syncer // nil when provider sync is disabled

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	MobileAppSecret         string // used by the mobile companion app
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	InsightsApiKey          string
	GoogleFitClientID       string
	GoogleFitClientSecret   string
	GoogleFitRefreshToken   string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
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
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
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

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	insightsClient := insights.NewClient(
		params.Config.InsightsApiUrl,
		params.InsightsApiKey,
		tracedHttpClient,
	)

	wearableRepo := wearable.NewRepo(dbPool)
	statsService := stats.NewService(stats.NewServiceParams{
		WorkoutLogs:     workouts.NewRepo(dbPool),
		NutritionLogs:   nutrition.NewRepo(dbPool),
		ProgressEntries: progress.NewRepo(dbPool),
		PostureSessions: posture.NewRepo(dbPool),
		WearableMetrics: wearableRepo,
		Repo:            stats.NewRepo(dbPool),
		Analyzer:        stats.NewAnalyzer(),
		Insights:        insightsClient,
		Metrics:         metricsManager,
	})

	var wearableSyncer *wearable.Syncer
	if params.Config.WearableSyncEnabled {
		googleFitClient, err := wearable.NewGoogleFitClient(ctx, wearable.GoogleFitClientConfig{
			ClientID:     params.GoogleFitClientID,
			ClientSecret: params.GoogleFitClientSecret,
			RefreshToken: params.GoogleFitRefreshToken,
		})
		if err != nil {
			return nil, fmt.Errorf("new google fit client: %w", err)
		}
		wearableSyncer = wearable.NewSyncer(
			googleFitClient,
			wearableRepo,
			statsService,
			metricsManager,
			params.Config.WearableSyncUserIDs,
			time.Duration(params.Config.WearableSyncIntervalMins)*time.Minute,
		)
	}

	return &Server{
		config:          params.Config,
		dbPool:          dbPool,
		versionInfo:     params.VersionInfo,
		mobileAppSecret: params.MobileAppSecret,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		statsService:   statsService,
		insightsClient: insightsClient,
		wearableSyncer: wearableSyncer,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	workoutsHandler := workouts.NewHandler(workouts.NewRepo(s.dbPool), s.statsService)
	workoutsHandler.SetupRoutes(r)

	nutritionHandler := nutrition.NewHandler(nutrition.NewRepo(s.dbPool), s.statsService)
	nutritionHandler.SetupRoutes(r)

	progressHandler := progress.NewHandler(progress.NewRepo(s.dbPool), s.statsService)
	progressHandler.SetupRoutes(r)

	postureHandler := posture.NewHandler(posture.NewRepo(s.dbPool), s.statsService)
	postureHandler.SetupRoutes(r)

	wearableRepo := wearable.NewRepo(s.dbPool)
	var wearableHandler *wearable.Handler
	if s.wearableSyncer != nil {
		wearableHandler = wearable.NewHandler(wearableRepo, s.wearableSyncer, s.statsService)
	} else {
		wearableHandler = wearable.NewHandler(wearableRepo, nil, s.statsService)
	}
	wearableHandler.SetupRoutes(r)

	statsHandler := stats.NewHandler(s.statsService)
	statsHandler.SetupRoutes(r, middleware.RateLimit(
		reqRateLimiter,
		"insights",
		s.config.InsightsRateLimitAllowedPerMin,
		s.metricsManager,
	))

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mobileAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
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
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
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

	if s.wearableSyncer != nil {
		go s.wearableSyncer.Start(ctx)
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
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
