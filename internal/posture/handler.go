package posture

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=posture_test

type sessionsRepo interface {
	Add(ctx context.Context, session *Session) (*Session, error)
	Get(ctx context.Context, id int) (*Session, error)
	ListAll(ctx context.Context, userID int) ([]Session, error)
}

type recomputeTrigger interface {
	TriggerRecompute(ctx context.Context, userID int) error
}

type SessionsListResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo  sessionsRepo
	stats recomputeTrigger
}

func NewHandler(repo sessionsRepo, stats recomputeTrigger) *Handler {
	return &Handler{
		repo:  repo,
		stats: stats,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/posture/user/{userId}/session", handler.HandleAdd).
		Methods("POST", "OPTIONS").Name("new-posture-session")
	router.HandleFunc("/posture/user/{userId}/sessions", handler.HandleList).
		Methods("GET", "OPTIONS").Name("list-posture-sessions")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.posture.add")
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

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("new posture session, unmarshal json params: %s", err)
		http.Error(w, "add posture session failed", http.StatusBadRequest)
		return
	}
	session.UserID = userID

	if session.Date.IsZero() {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}
	if session.AvgScore < 0 || session.AvgScore > 100 {
		http.Error(w, "error, avg score out of range", http.StatusBadRequest)
		return
	}

	addedSession, err := handler.repo.Add(ctx, &session)
	if err != nil {
		log.Errorf("failed to add new posture session for user %d: %s", userID, err)
		http.Error(w, "error, failed to add new posture session", http.StatusInternalServerError)
		return
	}

	log.Debugf("new posture session added for user %d: %d", userID, addedSession.ID)

	if err := handler.stats.TriggerRecompute(ctx, userID); err != nil {
		log.Errorf("posture session added, trigger stats recompute for user %d: %s", userID, err)
	}

	addedSessionJson, err := json.Marshal(addedSession)
	if err != nil {
		log.Errorf("failed to marshal new posture session: %s", err)
		http.Error(w, "error, failed to add new posture session", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSessionJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.posture.list")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	sessions, err := handler.repo.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("list posture sessions for user %d: %s", userID, err)
		http.Error(w, "failed to get posture sessions", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(SessionsListResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
	if err != nil {
		log.Errorf("marshal posture sessions error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listResponseJson)
}

func userIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["userId"])
}
