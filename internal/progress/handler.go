package progress

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test

type entriesRepo interface {
	Add(ctx context.Context, entry *Entry) (*Entry, error)
	Get(ctx context.Context, id int) (*Entry, error)
	ListAll(ctx context.Context, userID int) ([]Entry, error)
}

type recomputeTrigger interface {
	TriggerRecompute(ctx context.Context, userID int) error
}

type EntriesListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type Handler struct {
	repo  entriesRepo
	stats recomputeTrigger
}

func NewHandler(repo entriesRepo, stats recomputeTrigger) *Handler {
	return &Handler{
		repo:  repo,
		stats: stats,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/progress/user/{userId}/entry", handler.HandleAdd).
		Methods("POST", "OPTIONS").Name("new-progress-entry")
	router.HandleFunc("/progress/user/{userId}/entries", handler.HandleList).
		Methods("GET", "OPTIONS").Name("list-progress-entries")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.add")
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

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("new progress entry, unmarshal json params: %s", err)
		http.Error(w, "add progress entry failed", http.StatusBadRequest)
		return
	}
	entry.UserID = userID

	if entry.Date.IsZero() {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}

	addedEntry, err := handler.repo.Add(ctx, &entry)
	if err != nil {
		log.Errorf("failed to add new progress entry for user %d: %s", userID, err)
		http.Error(w, "error, failed to add new progress entry", http.StatusInternalServerError)
		return
	}

	log.Debugf("new progress entry added for user %d: %d", userID, addedEntry.ID)

	if err := handler.stats.TriggerRecompute(ctx, userID); err != nil {
		log.Errorf("progress entry added, trigger stats recompute for user %d: %s", userID, err)
	}

	addedEntryJson, err := json.Marshal(addedEntry)
	if err != nil {
		log.Errorf("failed to marshal new progress entry: %s", err)
		http.Error(w, "error, failed to add new progress entry", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedEntryJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	entries, err := handler.repo.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("list progress entries for user %d: %s", userID, err)
		http.Error(w, "failed to get progress entries", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(EntriesListResponse{
		Entries: entries,
		Total:   len(entries),
	})
	if err != nil {
		log.Errorf("marshal progress entries error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listResponseJson)
}

func userIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["userId"])
}
