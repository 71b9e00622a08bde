package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"
	"github.com/fittrackhq/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsService interface {
	GetStats(ctx context.Context, userID int) (*UserStats, error)
	Recompute(ctx context.Context, userID int) (*UserStats, error)
	GetInsights(ctx context.Context, userID int) ([]string, error)
}

type InsightsResponse struct {
	Insights []string `json:"insights"`
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, insightsRateLimit mux.MiddlewareFunc) {
	router.HandleFunc("/stats/user/{userId}", handler.HandleGet).
		Methods("GET", "OPTIONS").Name("get-stats")
	router.HandleFunc("/stats/user/{userId}/refresh", handler.HandleRefresh).
		Methods("POST", "OPTIONS").Name("refresh-stats")

	insightsRouter := router.PathPrefix("/stats/user/{userId}/insights").Subrouter()
	insightsRouter.Use(insightsRateLimit)
	insightsRouter.HandleFunc("", handler.HandleGetInsights).
		Methods("GET", "OPTIONS").Name("get-insights")
}

// HandleGet serves the materialized stats, computing them on the spot
// for a user seen for the first time.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.get")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	userStats, err := handler.service.GetStats(ctx, userID)
	if err != nil {
		log.Errorf("get stats for user %d: %s", userID, err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	userStatsJson, err := json.Marshal(userStats)
	if err != nil {
		log.Errorf("marshal user stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, userStatsJson)
}

// HandleRefresh forces a full recompute regardless of current state.
func (handler *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.refresh")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	userStats, err := handler.service.Recompute(ctx, userID)
	if err != nil {
		log.Errorf("refresh stats for user %d: %s", userID, err)
		http.Error(w, "failed to refresh stats", http.StatusInternalServerError)
		return
	}

	userStatsJson, err := json.Marshal(userStats)
	if err != nil {
		log.Errorf("marshal user stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, userStatsJson)
}

func (handler *Handler) HandleGetInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.getInsights")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	userInsights, err := handler.service.GetInsights(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserStatsNotFound) {
			http.Error(w, "no stats found, log some activity first", http.StatusNotFound)
			return
		}
		log.Errorf("get insights for user %d: %s", userID, err)
		http.Error(w, "failed to get insights", http.StatusInternalServerError)
		return
	}

	insightsJson, err := json.Marshal(InsightsResponse{Insights: userInsights})
	if err != nil {
		log.Errorf("marshal insights: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, insightsJson)
}

func userIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["userId"])
}
