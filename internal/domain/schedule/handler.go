package schedule

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"vet-clinic-console/internal/domain/appointments"
	"vet-clinic-console/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, cfgSvc *ConfigService, apptSvc *appointments.Service) {
	r.Route("/schedule", func(sr chi.Router) {
		sr.Get("/", gridHandler(cfgSvc, apptSvc))
		sr.Get("/types", getTypesHandler(cfgSvc))
		sr.Put("/types", saveTypesHandler(cfgSvc))
	})
}

type blockResponse struct {
	ID              int64     `json:"id"`
	PatientName     string    `json:"patient_name"`
	OwnerName       string    `json:"owner_name"`
	DoctorName      string    `json:"doctor_name"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Top             float64   `json:"top"`
	Height          float64   `json:"height"`
}

type dayResponse struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	Appointments []blockResponse `json:"appointments"`
}

type gridResponse struct {
	View          View          `json:"view"`
	Anchor        string        `json:"anchor"`
	LeadingBlanks int           `json:"leading_blanks,omitempty"`
	Days          []dayResponse `json:"days"`
}

// gridHandler godoc
// @Summary Agenda: días visibles y bloques posicionados para la vista pedida
// @Tags schedule
// @Produce json
// @Param view query string false "dia|semana|mes (default semana)"
// @Param date query string false "fecha ancla YYYY-MM-DD (default hoy)"
// @Param direction query int false "corre el ancla ±n periodos antes de computar"
// @Success 200 {object} schedule.gridResponse
// @Router /schedule [get]
func gridHandler(cfgSvc *ConfigService, apptSvc *appointments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, ok := ParseView(r.URL.Query().Get("view"))
		if !ok {
			httpx.WriteError(w, http.StatusBadRequest, "view must be dia, semana or mes")
			return
		}

		anchor := time.Now()
		if ds := r.URL.Query().Get("date"); ds != "" {
			t, err := time.Parse("2006-01-02", ds)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
				return
			}
			anchor = t
		}

		if dv := r.URL.Query().Get("direction"); dv != "" {
			dir, err := strconv.Atoi(dv)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "direction must be an integer")
				return
			}
			anchor = Navigate(view, anchor, dir)
		}

		all, err := apptSvc.GetAll(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		days := DaysToShow(view, anchor)
		out := gridResponse{
			View:   view,
			Anchor: anchor.Format("2006-01-02"),
			Days:   make([]dayResponse, 0, len(days)),
		}
		if view == ViewMonth {
			out.LeadingBlanks = LeadingBlanks(anchor)
		}

		for _, day := range days {
			dr := dayResponse{
				Date:         day.Format("2006-01-02"),
				Appointments: make([]blockResponse, 0),
			}
			for _, a := range all {
				if !SameDay(a.StartTime, day) {
					continue
				}
				dr.Appointments = append(dr.Appointments, blockResponse{
					ID:              a.ID,
					PatientName:     a.PatientName,
					OwnerName:       a.OwnerName,
					DoctorName:      a.DoctorName,
					Type:            a.Type,
					Status:          a.Status,
					StartTime:       a.StartTime,
					DurationMinutes: a.DurationMinutes,
					Top:             PixelOffset(a.StartTime),
					Height:          BlockHeight(a.DurationMinutes),
				})
			}
			out.Days = append(out.Days, dr)
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getTypesHandler(svc *ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, svc.GetAppointmentTypes(r.Context()))
	}
}

func saveTypesHandler(svc *ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var types []AppointmentTypeConfig
		if err := json.NewDecoder(r.Body).Decode(&types); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if err := svc.SaveAppointmentTypes(r.Context(), types); err != nil {
			switch err {
			case ErrInvalidConfig:
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		httpx.WriteJSON(w, http.StatusOK, types)
	}
}
