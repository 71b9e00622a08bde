package nutrition

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=nutrition_test

type nutritionLogsRepo interface {
	Add(ctx context.Context, nutritionLog *NutritionLog) (*NutritionLog, error)
	Get(ctx context.Context, id int) (*NutritionLog, error)
	ListAll(ctx context.Context, userID int) ([]NutritionLog, error)
}

type recomputeTrigger interface {
	TriggerRecompute(ctx context.Context, userID int) error
}

type NutritionLogsListResponse struct {
	NutritionLogs []NutritionLog `json:"nutritionLogs"`
	Total         int            `json:"total"`
}

type Handler struct {
	repo  nutritionLogsRepo
	stats recomputeTrigger
}

func NewHandler(repo nutritionLogsRepo, stats recomputeTrigger) *Handler {
	return &Handler{
		repo:  repo,
		stats: stats,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/nutrition/user/{userId}/log", handler.HandleAdd).
		Methods("POST", "OPTIONS").Name("new-nutrition-log")
	router.HandleFunc("/nutrition/user/{userId}/logs", handler.HandleList).
		Methods("GET", "OPTIONS").Name("list-nutrition-logs")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.add")
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

	var nutritionLog NutritionLog
	if err := json.NewDecoder(r.Body).Decode(&nutritionLog); err != nil {
		log.Errorf("new nutrition log, unmarshal json params: %s", err)
		http.Error(w, "add nutrition log failed", http.StatusBadRequest)
		return
	}
	nutritionLog.UserID = userID

	if nutritionLog.Date.IsZero() {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}

	addedLog, err := handler.repo.Add(ctx, &nutritionLog)
	if err != nil {
		log.Errorf("failed to add new nutrition log for user %d: %s", userID, err)
		http.Error(w, "error, failed to add new nutrition log", http.StatusInternalServerError)
		return
	}

	log.Debugf("new nutrition log added for user %d: %d", userID, addedLog.ID)

	if err := handler.stats.TriggerRecompute(ctx, userID); err != nil {
		log.Errorf("nutrition log added, trigger stats recompute for user %d: %s", userID, err)
	}

	addedLogJson, err := json.Marshal(addedLog)
	if err != nil {
		log.Errorf("failed to marshal new nutrition log: %s", err)
		http.Error(w, "error, failed to add new nutrition log", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedLogJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.list")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	nutritionLogs, err := handler.repo.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("list nutrition logs for user %d: %s", userID, err)
		http.Error(w, "failed to get nutrition logs", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(NutritionLogsListResponse{
		NutritionLogs: nutritionLogs,
		Total:         len(nutritionLogs),
	})
	if err != nil {
		log.Errorf("marshal nutrition logs error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listResponseJson)
}

func userIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["userId"])
}
