package hospitalizations

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"vet-clinic-console/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/hospitalizations", func(hr chi.Router) {
		hr.Get("/", listHandler(svc))
		hr.Post("/", createHandler(svc))
		hr.Get("/{hospID}", getHandler(svc))
		hr.Patch("/{hospID}", updateHandler(svc))
		hr.Delete("/{hospID}", deleteHandler(svc))

		hr.Get("/{hospID}/checks", listChecksHandler(svc))
		hr.Post("/{hospID}/checks", addCheckHandler(svc))
	})
}

type hospitalizationResponse struct {
	ID                   int64      `json:"id"`
	PatientID            int64      `json:"patient_id"`
	DoctorID             int64      `json:"doctor_id"`
	EntryDate            time.Time  `json:"entry_date"`
	Reason               string     `json:"reason"`
	DiagnosisPreliminary string     `json:"diagnosis_preliminary,omitempty"`
	AlertMessage         string     `json:"alert_message,omitempty"`
	AlertTime            string     `json:"alert_time,omitempty"`
	Status               string     `json:"status"`
	TreatmentPlan        string     `json:"treatment_plan,omitempty"`
	Notes                string     `json:"notes,omitempty"`
	WeightEntry          *float64   `json:"weight_entry,omitempty"`
	DischargeDate        *time.Time `json:"discharge_date,omitempty"`
	PatientName          string     `json:"patient_name,omitempty"`
	DoctorName           string     `json:"doctor_name,omitempty"`
}

type createHospitalizationRequest struct {
	PatientID            int64      `json:"patient_id"`
	DoctorID             int64      `json:"doctor_id"`
	EntryDate            *time.Time `json:"entry_date"`
	Reason               string     `json:"reason"`
	DiagnosisPreliminary string     `json:"diagnosis_preliminary"`
	AlertMessage         string     `json:"alert_message"`
	AlertTime            string     `json:"alert_time"`
	Status               string     `json:"status"`
	TreatmentPlan        string     `json:"treatment_plan"`
	Notes                string     `json:"notes"`
	WeightEntry          *float64   `json:"weight_entry"`
}

type updateHospitalizationRequest struct {
	PatientID            *int64     `json:"patient_id"`
	DoctorID             *int64     `json:"doctor_id"`
	EntryDate            *time.Time `json:"entry_date"`
	Reason               *string    `json:"reason"`
	DiagnosisPreliminary *string    `json:"diagnosis_preliminary"`
	AlertMessage         *string    `json:"alert_message"`
	AlertTime            *string    `json:"alert_time"`
	Status               *string    `json:"status"`
	TreatmentPlan        *string    `json:"treatment_plan"`
	Notes                *string    `json:"notes"`
	WeightEntry          *float64   `json:"weight_entry"`
	DischargeDate        *time.Time `json:"discharge_date"`
}

type checkResponse struct {
	ID                int64     `json:"id"`
	HospitalizationID int64     `json:"hospitalization_id"`
	CheckTime         time.Time `json:"check_time"`
	Temperature       *float64  `json:"temperature,omitempty"`
	HeartRate         *int      `json:"heart_rate,omitempty"`
	RespiratoryRate   *int      `json:"respiratory_rate,omitempty"`
	Observations      string    `json:"observations,omitempty"`
}

type addCheckRequest struct {
	CheckTime       *time.Time `json:"check_time"`
	Temperature     *float64   `json:"temperature"`
	HeartRate       *int       `json:"heart_rate"`
	RespiratoryRate *int       `json:"respiratory_rate"`
	Observations    string     `json:"observations"`
}

// listHandler godoc
// @Summary Lista internaciones (más recientes primero)
// @Tags hospitalizations
// @Produce json
// @Success 200 {array} hospitalizations.hospitalizationResponse
// @Router /hospitalizations [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]hospitalizationResponse, 0, len(items))
		for _, h := range items {
			out = append(out, toResponse(h))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createHospitalizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		h, err := svc.Create(r.Context(), CreateInput{
			PatientID:            req.PatientID,
			DoctorID:             req.DoctorID,
			EntryDate:            req.EntryDate,
			Reason:               req.Reason,
			DiagnosisPreliminary: req.DiagnosisPreliminary,
			AlertMessage:         req.AlertMessage,
			AlertTime:            req.AlertTime,
			Status:               req.Status,
			TreatmentPlan:        req.TreatmentPlan,
			Notes:                req.Notes,
			WeightEntry:          req.WeightEntry,
		})
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toResponse(h))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "hospID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid hospitalization id")
			return
		}

		h, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, "hospitalization not found")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(h))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "hospID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid hospitalization id")
			return
		}

		var req updateHospitalizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		h, err := svc.Update(r.Context(), id, UpdateInput{
			PatientID:            req.PatientID,
			DoctorID:             req.DoctorID,
			EntryDate:            req.EntryDate,
			Reason:               req.Reason,
			DiagnosisPreliminary: req.DiagnosisPreliminary,
			AlertMessage:         req.AlertMessage,
			AlertTime:            req.AlertTime,
			Status:               req.Status,
			TreatmentPlan:        req.TreatmentPlan,
			Notes:                req.Notes,
			WeightEntry:          req.WeightEntry,
			DischargeDate:        req.DischargeDate,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
			case ErrNotFound:
				httpx.WriteError(w, http.StatusNotFound, "hospitalization not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(h))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "hospID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid hospitalization id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch err {
			case ErrNotFound:
				httpx.WriteError(w, http.StatusNotFound, "hospitalization not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listChecksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "hospID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid hospitalization id")
			return
		}

		checks, err := svc.ListChecks(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]checkResponse, 0, len(checks))
		for _, c := range checks {
			out = append(out, toCheckResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func addCheckHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "hospID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid hospitalization id")
			return
		}

		var req addCheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		c, err := svc.AddCheck(r.Context(), id, CheckInput{
			CheckTime:       req.CheckTime,
			Temperature:     req.Temperature,
			HeartRate:       req.HeartRate,
			RespiratoryRate: req.RespiratoryRate,
			Observations:    req.Observations,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
			case ErrNotFound:
				httpx.WriteError(w, http.StatusNotFound, "hospitalization not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toCheckResponse(c))
	}
}

func toResponse(h Hospitalization) hospitalizationResponse {
	return hospitalizationResponse{
		ID:                   h.ID,
		PatientID:            h.PatientID,
		DoctorID:             h.DoctorID,
		EntryDate:            h.EntryDate,
		Reason:               h.Reason,
		DiagnosisPreliminary: h.DiagnosisPreliminary,
		AlertMessage:         h.AlertMessage,
		AlertTime:            h.AlertTime,
		Status:               h.Status,
		TreatmentPlan:        h.TreatmentPlan,
		Notes:                h.Notes,
		WeightEntry:          h.WeightEntry,
		DischargeDate:        h.DischargeDate,
		PatientName:          h.PatientName,
		DoctorName:           h.DoctorName,
	}
}

func toCheckResponse(c Check) checkResponse {
	return checkResponse{
		ID:                c.ID,
		HospitalizationID: c.HospitalizationID,
		CheckTime:         c.CheckTime,
		Temperature:       c.Temperature,
		HeartRate:         c.HeartRate,
		RespiratoryRate:   c.RespiratoryRate,
		Observations:      c.Observations,
	}
}
