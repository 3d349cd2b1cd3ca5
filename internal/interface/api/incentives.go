package api

import (
	"fmt"
	"net/http"

	"sdrops-service/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type incentiveRequest struct {
	Approved        bool   `json:"approved"`
	DateAnnounced   string `json:"dateAnnounced"`
	AnnouncedBy     string `json:"announcedBy"`
	BdrName         string `json:"bdrName"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Reason          string `json:"reason"`
	AdditionalNotes string `json:"additionalNotes"`
}

func (req *incentiveRequest) toEntity() (*entity.Incentive, error) {
	incentive := &entity.Incentive{
		Approved:        req.Approved,
		AnnouncedBy:     req.AnnouncedBy,
		BdrName:         req.BdrName,
		Currency:        req.Currency,
		Reason:          req.Reason,
		AdditionalNotes: req.AdditionalNotes,
	}

	if req.Amount != "" {
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount: %w", err)
		}
		incentive.Amount = amount
	}

	if req.DateAnnounced != "" {
		t, err := parseDate(req.DateAnnounced)
		if err != nil {
			return nil, fmt.Errorf("invalid dateAnnounced: %w", err)
		}
		incentive.DateAnnounced = t
	}
	return incentive, nil
}

func (s *Server) listIncentives(w http.ResponseWriter, r *http.Request) {
	incentives, err := s.incentives.List(r.Context())
	if err != nil {
		s.writeServiceError(w, "incentives_list", err)
		return
	}
	writeJSON(w, http.StatusOK, incentives)
}

func (s *Server) incentiveSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.incentives.Summary(r.Context())
	if err != nil {
		s.writeServiceError(w, "incentives_summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) createIncentive(w http.ResponseWriter, r *http.Request) {
	var req incentiveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	incentive, err := req.toEntity()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.incentives.Create(r.Context(), incentive); err != nil {
		s.writeServiceError(w, "incentives_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, incentive)
}

func (s *Server) updateIncentive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid id: %w", err))
		return
	}

	var req incentiveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	incentive, err := req.toEntity()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	incentive.ID = id

	if err := s.incentives.Update(r.Context(), incentive); err != nil {
		s.writeServiceError(w, "incentives_update", err)
		return
	}
	writeJSON(w, http.StatusOK, incentive)
}

func (s *Server) deleteIncentive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid id: %w", err))
		return
	}

	if err := s.incentives.Delete(r.Context(), id, confirmed(r)); err != nil {
		s.writeServiceError(w, "incentives_delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
