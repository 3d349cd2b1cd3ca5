package api

import (
	"fmt"
	"net/http"

	"sdrops-service/internal/domain/entity"
)

type statisticRequest struct {
	SdrName       string `json:"sdrName"`
	Date          string `json:"date"`
	Calls         int    `json:"calls"`
	Connected     int    `json:"connected"`
	Emails        int    `json:"emails"`
	PotentialAppt int    `json:"potentialAppt"`
}

func (req *statisticRequest) toEntity() (*entity.DailyStatistic, error) {
	stat := &entity.DailyStatistic{
		SdrName:       req.SdrName,
		Calls:         req.Calls,
		Connected:     req.Connected,
		Emails:        req.Emails,
		PotentialAppt: req.PotentialAppt,
	}

	if req.Date != "" {
		t, err := parseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		stat.Date = t
	}
	return stat, nil
}

func (s *Server) listStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.statistics.List(r.Context())
	if err != nil {
		s.writeServiceError(w, "statistics_list", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) statisticsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.statistics.Summary(r.Context())
	if err != nil {
		s.writeServiceError(w, "statistics_summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) createStatistic(w http.ResponseWriter, r *http.Request) {
	var req statisticRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	stat, err := req.toEntity()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.statistics.Create(r.Context(), stat); err != nil {
		s.writeServiceError(w, "statistics_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, stat)
}

func (s *Server) updateStatistic(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid id: %w", err))
		return
	}

	var req statisticRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	stat, err := req.toEntity()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	stat.ID = id

	if err := s.statistics.Update(r.Context(), stat); err != nil {
		s.writeServiceError(w, "statistics_update", err)
		return
	}
	writeJSON(w, http.StatusOK, stat)
}

func (s *Server) deleteStatistic(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid id: %w", err))
		return
	}

	if err := s.statistics.Delete(r.Context(), id, confirmed(r)); err != nil {
		s.writeServiceError(w, "statistics_delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
