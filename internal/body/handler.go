package body

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/xtrack/server/internal/auth"
	"github.com/xtrack/server/internal/telemetry/tracing"
	"github.com/xtrack/server/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=body_test

type bodyService interface {
	SaveMetric(ctx context.Context, metric Metric) error
	DeleteMetric(ctx context.Context, userID string, date pkg.Date) error
	ListMetrics(ctx context.Context, userID string, from *pkg.Date) ([]Metric, error)
	SaveMeasurement(ctx context.Context, measurement Measurement) error
	DeleteMeasurement(ctx context.Context, userID string, date pkg.Date) error
	ListMeasurements(ctx context.Context, userID string, from *pkg.Date) ([]Measurement, error)
}

type DeleteResponse struct {
	DeletedDate pkg.Date `json:"deletedDate"`
}

type Handler struct {
	service bodyService
}

func NewHandler(service bodyService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	bodyRouter := r.PathPrefix("/body").Subrouter()
	bodyRouter.HandleFunc("/metrics", h.HandleListMetrics).Methods("GET", "OPTIONS").Name("list-body-metrics")
	bodyRouter.HandleFunc("/metrics", h.HandleSaveMetric).Methods("PUT", "OPTIONS").Name("save-body-metric")
	bodyRouter.HandleFunc("/metrics/{date}", h.HandleDeleteMetric).Methods("DELETE", "OPTIONS").Name("delete-body-metric")
	bodyRouter.HandleFunc("/measurements", h.HandleListMeasurements).Methods("GET", "OPTIONS").Name("list-body-measurements")
	bodyRouter.HandleFunc("/measurements", h.HandleSaveMeasurement).Methods("PUT", "OPTIONS").Name("save-body-measurement")
	bodyRouter.HandleFunc("/measurements/{date}", h.HandleDeleteMeasurement).Methods("DELETE", "OPTIONS").Name("delete-body-measurement")
}

func (h *Handler) HandleListMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.metrics.list")
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

	metrics, err := h.service.ListMetrics(ctx, session.UserID, from)
	if err != nil {
		log.Errorf("list body metrics for %s: %s", session.UserID, err)
		http.Error(w, "error, failed to list body metrics", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, metrics)
}

func (h *Handler) HandleSaveMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.metrics.save")
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

	var metric Metric
	if err := json.NewDecoder(r.Body).Decode(&metric); err != nil {
		log.Tracef("save body metric, unmarshal json params: %s", err)
		http.Error(w, "save body metric failed", http.StatusBadRequest)
		return
	}
	metric.UserID = session.UserID

	if err := h.service.SaveMetric(ctx, metric); err != nil {
		if errors.Is(err, ErrInvalidEntry) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("save body metric [%s]: %s", metric.Date, err)
		http.Error(w, "error, failed to save body metric", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, metric)
}

func (h *Handler) HandleDeleteMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.metrics.delete")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	date, err := pkg.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteMetric(ctx, session.UserID, date); err != nil {
		if errors.Is(err, ErrMetricNotFound) {
			http.Error(w, "error, body metric not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete body metric %s: %s", date, err)
		http.Error(w, "error, failed to delete body metric", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, DeleteResponse{DeletedDate: date})
}

func (h *Handler) HandleListMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.measurements.list")
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

	measurements, err := h.service.ListMeasurements(ctx, session.UserID, from)
	if err != nil {
		log.Errorf("list body measurements for %s: %s", session.UserID, err)
		http.Error(w, "error, failed to list body measurements", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, measurements)
}

func (h *Handler) HandleSaveMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.measurements.save")
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

	var measurement Measurement
	if err := json.NewDecoder(r.Body).Decode(&measurement); err != nil {
		log.Tracef("save body measurement, unmarshal json params: %s", err)
		http.Error(w, "save body measurement failed", http.StatusBadRequest)
		return
	}
	measurement.UserID = session.UserID

	if err := h.service.SaveMeasurement(ctx, measurement); err != nil {
		if errors.Is(err, ErrInvalidEntry) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("save body measurement [%s]: %s", measurement.Date, err)
		http.Error(w, "error, failed to save body measurement", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, measurement)
}

func (h *Handler) HandleDeleteMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.measurements.delete")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	date, err := pkg.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteMeasurement(ctx, session.UserID, date); err != nil {
		if errors.Is(err, ErrMetricNotFound) {
			http.Error(w, "error, body measurement not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete body measurement %s: %s", date, err)
		http.Error(w, "error, failed to delete body measurement", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, DeleteResponse{DeletedDate: date})
}
