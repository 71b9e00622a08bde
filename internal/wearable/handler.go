package wearable

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"
	"github.com/fittrackhq/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=wearable_test

type wearableMetricsRepo interface {
	UpsertDaily(ctx context.Context, metric *Metric) (*Metric, error)
	ListAll(ctx context.Context, userID int) ([]Metric, error)
}

type userSyncer interface {
	SyncUser(ctx context.Context, userID int) error
}

type recomputeTrigger interface {
	TriggerRecompute(ctx context.Context, userID int) error
}

type MetricsListResponse struct {
	Metrics []Metric `json:"metrics"`
	Total   int      `json:"total"`
}

type Handler struct {
	repo   wearableMetricsRepo
	syncer userSyncer
	stats  recomputeTrigger
}

func NewHandler(repo wearableMetricsRepo, syncer userSyncer, stats recomputeTrigger) *Handler {
	return &Handler{
		repo:   repo,
		syncer: syncer,
		stats:  stats,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/wearable/user/{userId}/metric", handler.HandleUpsert).
		Methods("POST", "OPTIONS").Name("upsert-wearable-metric")
	router.HandleFunc("/wearable/user/{userId}/metrics", handler.HandleList).
		Methods("GET", "OPTIONS").Name("list-wearable-metrics")
	router.HandleFunc("/wearable/user/{userId}/sync", handler.HandleSync).
		Methods("POST", "OPTIONS").Name("sync-wearable-metrics")
}

// HandleUpsert takes a manually reported daily metric, e.g. from a
// device without provider integration.
func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wearable.upsert")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	var metric Metric
	if err := json.NewDecoder(r.Body).Decode(&metric); err != nil {
		log.Errorf("new wearable metric, unmarshal json params: %s", err)
		http.Error(w, "upsert wearable metric failed", http.StatusBadRequest)
		return
	}
	metric.UserID = userID

	if metric.Date.IsZero() {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}
	if metric.Source == "" {
		metric.Source = "manual"
	}

	upsertedMetric, err := handler.repo.UpsertDaily(ctx, &metric)
	if err != nil {
		log.Errorf("failed to upsert wearable metric for user %d: %s", userID, err)
		http.Error(w, "error, failed to upsert wearable metric", http.StatusInternalServerError)
		return
	}

	log.Debugf("wearable metric upserted for user %d: %d", userID, upsertedMetric.ID)

	if err := handler.stats.TriggerRecompute(ctx, userID); err != nil {
		log.Errorf("wearable metric upserted, trigger stats recompute for user %d: %s", userID, err)
	}

	upsertedMetricJson, err := json.Marshal(upsertedMetric)
	if err != nil {
		log.Errorf("failed to marshal wearable metric: %s", err)
		http.Error(w, "error, failed to upsert wearable metric", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, upsertedMetricJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wearable.list")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	wearableMetrics, err := handler.repo.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("list wearable metrics for user %d: %s", userID, err)
		http.Error(w, "failed to get wearable metrics", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(MetricsListResponse{
		Metrics: wearableMetrics,
		Total:   len(wearableMetrics),
	})
	if err != nil {
		log.Errorf("marshal wearable metrics error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listResponseJson)
}

// HandleSync triggers a provider pull for the user right now instead of
// waiting for the next background sync tick.
func (handler *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wearable.sync")
	defer span.End()

	if handler.syncer == nil {
		http.Error(w, "wearable provider sync disabled", http.StatusServiceUnavailable)
		return
	}

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.syncer.SyncUser(ctx, userID); err != nil {
		log.Errorf("manual wearable sync for user %d: %s", userID, err)
		http.Error(w, "wearable sync failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "synced")
}

func userIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["userId"])
}
