package strength

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=strength_test

type recordsService interface {
	Add(ctx context.Context, record Record) (*Record, error)
	Update(ctx context.Context, record Record) (*Record, error)
	Delete(ctx context.Context, userID string, id int) error
	Get(ctx context.Context, userID string, id int) (*Record, error)
	List(ctx context.Context, userID string, from *pkg.Date) ([]Record, error)
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service recordsService
}

func NewHandler(service recordsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/strength", h.HandleList).Methods("GET", "OPTIONS").Name("list-strength")
	r.HandleFunc("/strength", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-strength")
	r.HandleFunc("/strength/exercises", h.HandleExercises).Methods("GET", "OPTIONS").Name("strength-exercises")
	r.HandleFunc("/strength/{id:[0-9]+}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-strength")
	r.HandleFunc("/strength/{id:[0-9]+}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-strength")
	r.HandleFunc("/strength/{id:[0-9]+}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-strength")
}

func (h *Handler) HandleExercises(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONOK(w, Exercises)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strength.list")
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

	records, err := h.service.List(ctx, session.UserID, from)
	if err != nil {
		log.Errorf("list strength records for %s: %s", session.UserID, err)
		http.Error(w, "error, failed to list strength records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, records)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strength.add")
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

	var record Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("new strength record, unmarshal json params: %s", err)
		http.Error(w, "add strength record failed", http.StatusBadRequest)
		return
	}
	record.UserID = session.UserID

	added, err := h.service.Add(ctx, record)
	if err != nil {
		if errors.Is(err, ErrInvalidRecord) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add strength record [%s]: %s", record.Exercise, err)
		http.Error(w, "error, failed to add strength record", http.StatusInternalServerError)
		return
	}

	log.Debugf("new strength record added: %d [pr: %t]", added.ID, added.IsPr)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strength.get")
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

	record, err := h.service.Get(ctx, session.UserID, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "error, strength record not found", http.StatusNotFound)
			return
		}
		log.Errorf("get strength record %d: %s", id, err)
		http.Error(w, "error, failed to get strength record", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, record)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strength.update")
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

	var record Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("update strength record, unmarshal json params: %s", err)
		http.Error(w, "update strength record failed", http.StatusBadRequest)
		return
	}
	record.ID = id
	record.UserID = session.UserID

	updated, err := h.service.Update(ctx, record)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRecord):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrRecordNotFound):
			http.Error(w, "error, strength record not found", http.StatusNotFound)
		default:
			log.Errorf("update strength record %d: %s", id, err)
			http.Error(w, "error, failed to update strength record", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSONOK(w, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strength.delete")
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
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "error, strength record not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete strength record %d: %s", id, err)
		http.Error(w, "error, failed to delete strength record", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, DeleteResponse{DeletedID: id})
}
