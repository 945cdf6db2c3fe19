package cardio

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/xtrack/server/internal/auth"
	"github.com/xtrack/server/internal/telemetry/tracing"
	"github.com/xtrack/server/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=cardio_test

type activitiesService interface {
	Add(ctx context.Context, a Activity) (*Activity, error)
	Update(ctx context.Context, a Activity) (*Activity, error)
	Delete(ctx context.Context, userID string, id int) error
	Get(ctx context.Context, userID string, id int) (*Activity, error)
	List(ctx context.Context, userID string, from *pkg.Date) ([]Activity, error)
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service activitiesService
}

func NewHandler(service activitiesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/cardio", h.HandleList).Methods("GET", "OPTIONS").Name("list-cardio")
	r.HandleFunc("/cardio", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-cardio")
	r.HandleFunc("/cardio/{id:[0-9]+}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-cardio")
	r.HandleFunc("/cardio/{id:[0-9]+}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-cardio")
	r.HandleFunc("/cardio/{id:[0-9]+}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-cardio")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cardio.list")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, err := pkg.ParseOptionalDate(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "error, invalid from date", http.StatusBadRequest)
		return
	}

	activities, err := h.service.List(ctx, session.UserID, from)
	if err != nil {
		log.Errorf("list cardio activities for %s: %s", session.UserID, err)
		http.Error(w, "error, failed to list cardio activities", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, activities)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cardio.add")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var activity Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Tracef("new cardio activity, unmarshal json params: %s", err)
		http.Error(w, "add cardio activity failed", http.StatusBadRequest)
		return
	}
	activity.UserID = session.UserID

	added, err := h.service.Add(ctx, activity)
	if err != nil {
		if errors.Is(err, ErrInvalidActivity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add cardio activity [%s]: %s", activity.ActivityType, err)
		http.Error(w, "error, failed to add cardio activity", http.StatusInternalServerError)
		return
	}

	log.Debugf("new cardio activity added: %d [pr: %t]", added.ID, added.IsPr)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cardio.get")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	activity, err := h.service.Get(ctx, session.UserID, id)
	if err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "error, cardio activity not found", http.StatusNotFound)
			return
		}
		log.Errorf("get cardio activity %d: %s", id, err)
		http.Error(w, "error, failed to get cardio activity", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, activity)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cardio.update")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var activity Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Tracef("update cardio activity, unmarshal json params: %s", err)
		http.Error(w, "update cardio activity failed", http.StatusBadRequest)
		return
	}
	activity.ID = id
	activity.UserID = session.UserID

	updated, err := h.service.Update(ctx, activity)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidActivity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrActivityNotFound):
			http.Error(w, "error, cardio activity not found", http.StatusNotFound)
		default:
			log.Errorf("update cardio activity %d: %s", id, err)
			http.Error(w, "error, failed to update cardio activity", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSONOK(w, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cardio.delete")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, session.UserID, id); err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "error, cardio activity not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete cardio activity %d: %s", id, err)
		http.Error(w, "error, failed to delete cardio activity", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, DeleteResponse{DeletedID: id})
}
