package appointments

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"vet-clinic-console/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Patch("/{appointmentID}", updateAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

type appointmentResponse struct {
	ID              int64     `json:"id"`
	PatientID       int64     `json:"patient_id"`
	DoctorID        int64     `json:"doctor_id"`
	AssistantID     *int64    `json:"assistant_id,omitempty"`
	Type            string    `json:"type"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	PatientName     string    `json:"patient_name,omitempty"`
	OwnerName       string    `json:"owner_name,omitempty"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	AssistantName   string    `json:"assistant_name,omitempty"`
}

type createAppointmentRequest struct {
	PatientID       int64     `json:"patient_id"`
	DoctorID        int64     `json:"doctor_id"`
	AssistantID     *int64    `json:"assistant_id"`
	Type            string    `json:"type"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
}

type updateAppointmentRequest struct {
	PatientID       *int64     `json:"patient_id"`
	DoctorID        *int64     `json:"doctor_id"`
	Type            *string    `json:"type"`
	StartTime       *time.Time `json:"start_time"`
	DurationMinutes *int       `json:"duration_minutes"`
	Status          *string    `json:"status"`
}

// listAppointmentsHandler godoc
// @Summary Lista citas por hora de inicio con nombres denormalizados
// @Tags appointments
// @Produce json
// @Success 200 {array} appointments.appointmentResponse
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PatientID:       req.PatientID,
			DoctorID:        req.DoctorID,
			AssistantID:     req.AssistantID,
			Type:            req.Type,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid appointment id")
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, "appointment not found")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid appointment id")
			return
		}

		// Para soportar "assistant_id": null (quitar asistente) hay que
		// detectar presencia del campo, no alcanza con el puntero.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		var req updateAppointmentRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "invalid json")
				return
			}
		}

		assistant := PatchAssistant{}
		if v, exists := raw["assistant_id"]; exists {
			assistant.Present = true
			if string(v) != "null" {
				var idv int64
				if err := json.Unmarshal(v, &idv); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "assistant_id must be a number or null")
					return
				}
				assistant.Value = &idv
			}
		}

		a, err := svc.Update(r.Context(), id, UpdateInput{
			PatientID:       req.PatientID,
			DoctorID:        req.DoctorID,
			Assistant:       assistant,
			Type:            req.Type,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Status:          req.Status,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput, ErrMissingSelection:
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
			case ErrNotFound:
				httpx.WriteError(w, http.StatusNotFound, "appointment not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid appointment id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch err {
			case ErrNotFound:
				httpx.WriteError(w, http.StatusNotFound, "appointment not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AssistantID:     a.AssistantID,
		Type:            a.Type,
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
		Status:          a.Status,
		PatientName:     a.PatientName,
		OwnerName:       a.OwnerName,
		DoctorName:      a.DoctorName,
		AssistantName:   a.AssistantName,
	}
}
