package workouts

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workouts_test

type workoutLogsRepo interface {
	Add(ctx context.Context, workoutLog *WorkoutLog) (*WorkoutLog, error)
	Get(ctx context.Context, id int) (*WorkoutLog, error)
	ListAll(ctx context.Context, userID int) ([]WorkoutLog, error)
}

type recomputeTrigger interface {
	TriggerRecompute(ctx context.Context, userID int) error
}

type WorkoutLogsListResponse struct {
	WorkoutLogs []WorkoutLog `json:"workoutLogs"`
	Total       int          `json:"total"`
}

type Handler struct {
	repo  workoutLogsRepo
	stats recomputeTrigger
}

func NewHandler(repo workoutLogsRepo, stats recomputeTrigger) *Handler {
	return &Handler{
		repo:  repo,
		stats: stats,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts/user/{userId}/log", handler.HandleAdd).
		Methods("POST", "OPTIONS").Name("new-workout-log")
	router.HandleFunc("/workouts/user/{userId}/logs", handler.HandleList).
		Methods("GET", "OPTIONS").Name("list-workout-logs")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
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

	var workoutLog WorkoutLog
	if err := json.NewDecoder(r.Body).Decode(&workoutLog); err != nil {
		log.Errorf("new workout log, unmarshal json params: %s", err)
		http.Error(w, "add workout log failed", http.StatusBadRequest)
		return
	}
	workoutLog.UserID = userID

	if workoutLog.CompletedAt.IsZero() {
		http.Error(w, "error, completed at empty", http.StatusBadRequest)
		return
	}

	addedLog, err := handler.repo.Add(ctx, &workoutLog)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "error, workout not found", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new workout log for user %d: %s", userID, err)
		http.Error(w, "error, failed to add new workout log", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout log added for user %d: %d", userID, addedLog.ID)

	// the materialized stats are rebuilt after every source log write
	if err := handler.stats.TriggerRecompute(ctx, userID); err != nil {
		log.Errorf("workout log added, trigger stats recompute for user %d: %s", userID, err)
	}

	addedLogJson, err := json.Marshal(addedLog)
	if err != nil {
		log.Errorf("failed to marshal new workout log: %s", err)
		http.Error(w, "error, failed to add new workout log", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedLogJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	workoutLogs, err := handler.repo.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("list workout logs for user %d: %s", userID, err)
		http.Error(w, "failed to get workout logs", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(WorkoutLogsListResponse{
		WorkoutLogs: workoutLogs,
		Total:       len(workoutLogs),
	})
	if err != nil {
		log.Errorf("marshal workout logs error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listResponseJson)
}

func userIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["userId"])
}
