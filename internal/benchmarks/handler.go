package benchmarks

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=benchmarks_test

type resultsService interface {
	Catalog(ctx context.Context) ([]Benchmark, error)
	AddResult(ctx context.Context, result Result) (*Result, error)
	UpdateResult(ctx context.Context, result Result) (*Result, error)
	DeleteResult(ctx context.Context, userID string, id int) error
	GetResult(ctx context.Context, userID string, id int) (*Result, error)
	ListResults(ctx context.Context, userID string, from *pkg.Date) ([]Result, error)
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service resultsService
}

func NewHandler(service resultsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/benchmarks", h.HandleCatalog).Methods("GET", "OPTIONS").Name("benchmarks-catalog")
	r.HandleFunc("/benchmarks/results", h.HandleList).Methods("GET", "OPTIONS").Name("list-benchmark-results")
	r.HandleFunc("/benchmarks/results", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-benchmark-result")
	r.HandleFunc("/benchmarks/results/{id:[0-9]+}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-benchmark-result")
	r.HandleFunc("/benchmarks/results/{id:[0-9]+}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-benchmark-result")
	r.HandleFunc("/benchmarks/results/{id:[0-9]+}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-benchmark-result")
}

// writeErr maps the service errors shared by add and update onto a status.
func writeErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidResult), errors.Is(err, ErrInvalidScale):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrBenchmarkNotFound):
		http.Error(w, "error, unknown benchmark", http.StatusBadRequest)
	case errors.Is(err, ErrResultNotFound):
		http.Error(w, "error, benchmark result not found", http.StatusNotFound)
	default:
		log.Errorf("%s benchmark result: %s", op, err)
		http.Error(w, "error, failed to "+op+" benchmark result", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchmarks.catalog")
	defer span.End()

	catalog, err := h.service.Catalog(ctx)
	if err != nil {
		log.Errorf("list benchmarks: %s", err)
		http.Error(w, "error, failed to list benchmarks", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, catalog)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchmarks.list")
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

	results, err := h.service.ListResults(ctx, session.UserID, from)
	if err != nil {
		log.Errorf("list benchmark results for %s: %s", session.UserID, err)
		http.Error(w, "error, failed to list benchmark results", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, results)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchmarks.add")
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

	var result Result
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		log.Tracef("new benchmark result, unmarshal json params: %s", err)
		http.Error(w, "add benchmark result failed", http.StatusBadRequest)
		return
	}
	result.UserID = session.UserID

	added, err := h.service.AddResult(ctx, result)
	if err != nil {
		writeErr(w, "add", err)
		return
	}

	log.Debugf("new benchmark result added: %d [pr: %t]", added.ID, added.IsPr)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchmarks.get")
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

	result, err := h.service.GetResult(ctx, session.UserID, id)
	if err != nil {
		writeErr(w, "get", err)
		return
	}

	pkg.WriteJSONOK(w, result)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchmarks.update")
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

	var result Result
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		log.Tracef("update benchmark result, unmarshal json params: %s", err)
		http.Error(w, "update benchmark result failed", http.StatusBadRequest)
		return
	}
	result.ID = id
	result.UserID = session.UserID

	updated, err := h.service.UpdateResult(ctx, result)
	if err != nil {
		writeErr(w, "update", err)
		return
	}

	pkg.WriteJSONOK(w, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchmarks.delete")
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

	if err := h.service.DeleteResult(ctx, session.UserID, id); err != nil {
		writeErr(w, "delete", err)
		return
	}

	pkg.WriteJSONOK(w, DeleteResponse{DeletedID: id})
}
