package api

import (
	"net/http"

	"sdrops-service/internal/domain/entity"
)

type meetingRequest struct {
	Week        string `json:"week"`
	Month       string `json:"month"`
	Year        string `json:"year"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName"`
	Title       string `json:"title"`
	Email       string `json:"email"`
	ContactNo   string `json:"contactNo"`
	AssignedTo  string `json:"assignedTo"`
	Location    string `json:"location"`
}

func (req *meetingRequest) toEntity() *entity.WeeklyMeeting {
	return &entity.WeeklyMeeting{
		Week:        req.Week,
		Month:       req.Month,
		Year:        req.Year,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Title:       req.Title,
		Email:       req.Email,
		ContactNo:   req.ContactNo,
		AssignedTo:  req.AssignedTo,
		Location:    req.Location,
	}
}

func (s *Server) listMeetings(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	year := r.URL.Query().Get("year")

	meetings, err := s.meetings.List(r.Context(), month, year)
	if err != nil {
		s.writeServiceError(w, "meetings_list", err)
		return
	}
	writeJSON(w, http.StatusOK, meetings)
}

func (s *Server) createMeeting(w http.ResponseWriter, r *http.Request) {
	var req meetingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	meeting := req.toEntity()
	if err := s.meetings.Create(r.Context(), meeting); err != nil {
		s.writeServiceError(w, "meetings_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, meeting)
}

func (s *Server) updateMeeting(w http.ResponseWriter, r *http.Request) {
	var req meetingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	meeting := req.toEntity()
	meeting.ID = r.PathValue("id")

	if err := s.meetings.Update(r.Context(), meeting); err != nil {
		s.writeServiceError(w, "meetings_update", err)
		return
	}
	writeJSON(w, http.StatusOK, meeting)
}

func (s *Server) deleteMeeting(w http.ResponseWriter, r *http.Request) {
	if err := s.meetings.Delete(r.Context(), r.PathValue("id"), confirmed(r)); err != nil {
		s.writeServiceError(w, "meetings_delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) exportMeetings(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	year := r.URL.Query().Get("year")

	count, err := s.meetings.Export(r.Context(), month, year)
	if err != nil {
		s.writeServiceError(w, "meetings_export", err)
		return
	}
	writeJSON(w, http.StatusOK, exportResponse{Exported: count})
}
