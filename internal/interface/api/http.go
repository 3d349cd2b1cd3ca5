// Package api wires the dashboard REST routes and shared HTTP helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"sdrops-service/internal/domain/repository"
	"sdrops-service/internal/usecase"
	"sdrops-service/pkg/logger"
	"sdrops-service/pkg/metrics"

	"github.com/google/uuid"
)

// Server bundles the usecase services behind HTTP handlers
type Server struct {
	appointments *usecase.AppointmentService
	statistics   *usecase.StatisticService
	incentives   *usecase.IncentiveService
	meetings     *usecase.MeetingService
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewServer creates the API server with all handlers wired
func NewServer(
	appointments *usecase.AppointmentService,
	statistics *usecase.StatisticService,
	incentives *usecase.IncentiveService,
	meetings *usecase.MeetingService,
	m *metrics.Metrics,
	log logger.Logger,
) *Server {
	return &Server{
		appointments: appointments,
		statistics:   statistics,
		incentives:   incentives,
		meetings:     meetings,
		metrics:      m,
		logger:       log,
	}
}

// Register attaches all dashboard routes to mux
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/appointments", s.instrument("appointments", "list", s.listAppointments))
	mux.HandleFunc("GET /api/v1/appointments/summary", s.instrument("appointments", "summary", s.appointmentSummary))
	mux.HandleFunc("POST /api/v1/appointments", s.instrument("appointments", "create", s.createAppointment))
	mux.HandleFunc("POST /api/v1/appointments/import", s.instrument("appointments", "import", s.importAppointments))
	mux.HandleFunc("PUT /api/v1/appointments/{id}", s.instrument("appointments", "update", s.updateAppointment))
	mux.HandleFunc("DELETE /api/v1/appointments/{id}", s.instrument("appointments", "delete", s.deleteAppointment))

	mux.HandleFunc("GET /api/v1/statistics", s.instrument("statistics", "list", s.listStatistics))
	mux.HandleFunc("GET /api/v1/statistics/summary", s.instrument("statistics", "summary", s.statisticsSummary))
	mux.HandleFunc("POST /api/v1/statistics", s.instrument("statistics", "create", s.createStatistic))
	mux.HandleFunc("PUT /api/v1/statistics/{id}", s.instrument("statistics", "update", s.updateStatistic))
	mux.HandleFunc("DELETE /api/v1/statistics/{id}", s.instrument("statistics", "delete", s.deleteStatistic))

	mux.HandleFunc("GET /api/v1/incentives", s.instrument("incentives", "list", s.listIncentives))
	mux.HandleFunc("GET /api/v1/incentives/summary", s.instrument("incentives", "summary", s.incentiveSummary))
	mux.HandleFunc("POST /api/v1/incentives", s.instrument("incentives", "create", s.createIncentive))
	mux.HandleFunc("PUT /api/v1/incentives/{id}", s.instrument("incentives", "update", s.updateIncentive))
	mux.HandleFunc("DELETE /api/v1/incentives/{id}", s.instrument("incentives", "delete", s.deleteIncentive))

	mux.HandleFunc("GET /api/v1/meetings", s.instrument("meetings", "list", s.listMeetings))
	mux.HandleFunc("POST /api/v1/meetings", s.instrument("meetings", "create", s.createMeeting))
	mux.HandleFunc("POST /api/v1/meetings/export", s.instrument("meetings", "export", s.exportMeetings))
	mux.HandleFunc("PUT /api/v1/meetings/{id}", s.instrument("meetings", "update", s.updateMeeting))
	mux.HandleFunc("DELETE /api/v1/meetings/{id}", s.instrument("meetings", "delete", s.deleteMeeting))
}

// instrument counts the request and records its duration
func (s *Server) instrument(collection, operation string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.metrics.RequestsTotal.WithLabelValues(collection, operation).Inc()
		next(w, r)
		s.metrics.RequestDuration.Observe(time.Since(start).Seconds())
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type importResponse struct {
	Imported int `json:"imported"`
}

type exportResponse struct {
	Exported int `json:"exported"`
}

func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// writeServiceError maps usecase and repository errors to status codes
func (s *Server) writeServiceError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields),
		errors.Is(err, usecase.ErrConfirmationRequired),
		errors.Is(err, usecase.ErrNotEditable):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, usecase.ErrExportNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
		writeError(w, http.StatusInternalServerError, err)
	}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// confirmed reports whether the request carries the delete confirmation
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

// parseDate accepts the dashboard's plain date format first, then RFC3339
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
