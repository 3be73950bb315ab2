package patients

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vet-clinic-console/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(svc))
		pr.Post("/", createPatientHandler(svc))
		pr.Get("/{patientID}", getPatientHandler(svc))
		pr.Patch("/{patientID}", updatePatientHandler(svc))
		pr.Delete("/{patientID}", deletePatientHandler(svc))
	})
}

type patientResponse struct {
	ID        int64   `json:"id"`
	OwnerID   int64   `json:"owner_id"`
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	Breed     string  `json:"breed"`
	AgeMonths int     `json:"age_months"`
	WeightKg  float64 `json:"weight_kg"`
	OwnerName string  `json:"owner_name,omitempty"`
}

type createPatientRequest struct {
	OwnerID   int64   `json:"owner_id"`
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	Breed     string  `json:"breed"`
	AgeMonths int     `json:"age_months"`
	WeightKg  float64 `json:"weight_kg"`
}

type updatePatientRequest struct {
	OwnerID   *int64   `json:"owner_id"`
	Name      *string  `json:"name"`
	Species   *string  `json:"species"`
	Breed     *string  `json:"breed"`
	AgeMonths *int     `json:"age_months"`
	WeightKg  *float64 `json:"weight_kg"`
}

// listPatientsHandler godoc
// @Summary Lista pacientes (más recientes primero) con nombre del propietario
// @Tags patients
// @Produce json
// @Success 200 {array} patients.patientResponse
// @Router /patients [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			OwnerID:   req.OwnerID,
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			AgeMonths: req.AgeMonths,
			WeightKg:  req.WeightKg,
		})
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toPatientResponse(p))
	}
}

func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "patientID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid patient id")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, "patient not found")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

func updatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "patientID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid patient id")
			return
		}

		var req updatePatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			OwnerID:   req.OwnerID,
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			AgeMonths: req.AgeMonths,
			WeightKg:  req.WeightKg,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
			case ErrNotFound:
				httpx.WriteError(w, http.StatusNotFound, "patient not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

func deletePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "patientID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid patient id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch err {
			case ErrNotFound:
				httpx.WriteError(w, http.StatusNotFound, "patient not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		AgeMonths: p.AgeMonths,
		WeightKg:  p.WeightKg,
		OwnerName: p.OwnerName,
	}
}
