package stats

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/xtrack/server/internal/auth"
	"github.com/xtrack/server/internal/telemetry/tracing"
	"github.com/xtrack/server/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsService interface {
	Report(ctx context.Context, userID string, rng TimeRange) (*Report, error)
	Dashboard(ctx context.Context, userID string) (*Dashboard, error)
	Cardio(ctx context.Context, userID string) (*CardioSummary, error)
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/stats", h.HandleReport).Methods("GET", "OPTIONS").Name("stats-report")
	r.HandleFunc("/stats/dashboard", h.HandleDashboard).Methods("GET", "OPTIONS").Name("stats-dashboard")
	r.HandleFunc("/stats/cardio", h.HandleCardio).Methods("GET", "OPTIONS").Name("stats-cardio")
}

func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "statsHandler.report")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	rng, err := ParseTimeRange(r.URL.Query().Get("range"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.service.Report(ctx, session.UserID, rng)
	if err != nil {
		log.Errorf("stats report [%s] for %s: %s", rng, session.UserID, err)
		http.Error(w, "failed to load statistics", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, report)
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "statsHandler.dashboard")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dashboard, err := h.service.Dashboard(ctx, session.UserID)
	if err != nil {
		log.Errorf("stats dashboard for %s: %s", session.UserID, err)
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, dashboard)
}

func (h *Handler) HandleCardio(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "statsHandler.cardio")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	summary, err := h.service.Cardio(ctx, session.UserID)
	if err != nil {
		log.Errorf("stats cardio for %s: %s", session.UserID, err)
		http.Error(w, "failed to load cardio summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, summary)
}
