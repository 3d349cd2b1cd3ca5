package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/internal/usecase"
)

// appointmentRequest carries the client payload for create and update.
// Clients may send a status directly or the legacy conducted/noShow pair.
type appointmentRequest struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Title              string `json:"title"`
	Email              string `json:"email"`
	Company            string `json:"company"`
	Number             string `json:"number"`
	LinkedIn           string `json:"linkedin"`
	Country            string `json:"country"`
	ScheduledOn        string `json:"scheduledOn"`
	ScheduledFor       string `json:"scheduledFor"`
	Status             string `json:"status"`
	Conducted          bool   `json:"conducted"`
	NoShow             bool   `json:"noShow"`
	Opportunity        bool   `json:"opportunity"`
	Notes              string `json:"notes"`
	RescheduleComments string `json:"rescheduleComments"`
	MeetingNotes       string `json:"meetingNotes"`
	SdrName            string `json:"sdrName"`
}

func (req *appointmentRequest) toEntity() (*entity.Appointment, error) {
	appointment := &entity.Appointment{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Title:              req.Title,
		Email:              req.Email,
		Company:            req.Company,
		Number:             req.Number,
		LinkedIn:           req.LinkedIn,
		Country:            req.Country,
		Opportunity:        req.Opportunity,
		Notes:              req.Notes,
		RescheduleComments: req.RescheduleComments,
		MeetingNotes:       req.MeetingNotes,
		SdrName:            req.SdrName,
	}

	switch req.Status {
	case "":
		appointment.Status = entity.StatusFromFlags(req.Conducted, req.NoShow)
	case entity.StatusPending, entity.StatusConducted, entity.StatusNoShow:
		appointment.Status = req.Status
	default:
		return nil, fmt.Errorf("unknown status %q", req.Status)
	}

	if req.ScheduledOn != "" {
		t, err := parseDate(req.ScheduledOn)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduledOn: %w", err)
		}
		appointment.ScheduledOn = t
	}
	if req.ScheduledFor != "" {
		t, err := parseDate(req.ScheduledFor)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduledFor: %w", err)
		}
		appointment.ScheduledFor = t
	}

	return appointment, nil
}

// appointmentResponse adds the derived status flags the dashboard renders
type appointmentResponse struct {
	*entity.Appointment
	Conducted bool `json:"conducted"`
	NoShow    bool `json:"noShow"`
}

func toAppointmentResponse(a *entity.Appointment) appointmentResponse {
	return appointmentResponse{
		Appointment: a,
		Conducted:   a.Conducted(),
		NoShow:      a.NoShow(),
	}
}

func (s *Server) listAppointments(w http.ResponseWriter, r *http.Request) {
	filter := usecase.AppointmentFilter{
		Search:  r.URL.Query().Get("search"),
		Status:  r.URL.Query().Get("status"),
		SdrName: r.URL.Query().Get("sdr"),
	}

	appointments, err := s.appointments.List(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, "appointments_list", err)
		return
	}

	responses := make([]appointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		responses = append(responses, toAppointmentResponse(a))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (s *Server) appointmentSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.appointments.Summary(r.Context())
	if err != nil {
		s.writeServiceError(w, "appointments_summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) createAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	appointment, err := req.toEntity()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.appointments.Create(r.Context(), appointment); err != nil {
		s.writeServiceError(w, "appointments_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toAppointmentResponse(appointment))
}

func (s *Server) updateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid id: %w", err))
		return
	}

	var req appointmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	appointment, err := req.toEntity()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	appointment.ID = id

	if err := s.appointments.Update(r.Context(), appointment); err != nil {
		s.writeServiceError(w, "appointments_update", err)
		return
	}
	writeJSON(w, http.StatusOK, toAppointmentResponse(appointment))
}

func (s *Server) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid id: %w", err))
		return
	}

	if err := s.appointments.Delete(r.Context(), id, confirmed(r)); err != nil {
		s.writeServiceError(w, "appointments_delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// importAppointments accepts a multipart upload under the "file" field,
// falling back to the raw request body for plain text posts
func (s *Server) importAppointments(w http.ResponseWriter, r *http.Request) {
	raw, err := readImportPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	count, err := s.appointments.Import(r.Context(), raw)
	if err != nil {
		s.writeServiceError(w, "appointments_import", err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Imported: count})
}

func readImportPayload(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(8 << 20); err == nil {
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", errors.New("multipart request is missing the file field")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("empty import payload")
	}
	return string(data), nil
}
