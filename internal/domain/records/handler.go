package records

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vet-clinic-console/internal/platform/httpx"
	"vet-clinic-console/internal/ports/blob"
)

func RegisterRoutes(r chi.Router, svc *Service, uploader blob.Uploader) {
	r.Route("/records", func(rr chi.Router) {
		rr.Get("/", listRecordsHandler(svc))
		rr.Post("/", createRecordHandler(svc))
		rr.Delete("/{recordID}", deleteRecordHandler(svc))
		rr.Post("/upload", uploadHandler(uploader))
	})
}

type recordResponse struct {
	ID           int64  `json:"id"`
	PatientID    int64  `json:"patient_id"`
	DoctorID     int64  `json:"doctor_id"`
	VisitDate    int64  `json:"visit_date"`
	Observations string `json:"observations,omitempty"`
	Diagnosis    string `json:"diagnosis,omitempty"`
	Treatment    string `json:"treatment,omitempty"`
	FileURL      string `json:"file_url,omitempty"`
	PatientName  string `json:"patient_name,omitempty"`
	DoctorName   string `json:"doctor_name,omitempty"`
}

type createRecordRequest struct {
	PatientID    int64  `json:"patient_id"`
	DoctorID     int64  `json:"doctor_id"`
	VisitDate    int64  `json:"visit_date"`
	Observations string `json:"observations"`
	Diagnosis    string `json:"diagnosis"`
	Treatment    string `json:"treatment"`
	FileURL      string `json:"file_url"`
}

// listRecordsHandler godoc
// @Summary Lista entradas de expediente (visitas más recientes primero)
// @Tags records
// @Produce json
// @Success 200 {array} records.recordResponse
// @Router /records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			PatientID:    req.PatientID,
			DoctorID:     req.DoctorID,
			VisitDate:    req.VisitDate,
			Observations: req.Observations,
			Diagnosis:    req.Diagnosis,
			Treatment:    req.Treatment,
			FileURL:      req.FileURL,
		})
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid record id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch err {
			case ErrNotFound:
				httpx.WriteError(w, http.StatusNotFound, "medical record not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// uploadHandler godoc
// @Summary Sube un adjunto y devuelve su URL pública
// @Tags records
// @Accept mpfd
// @Produce json
// @Param file formData file true "archivo adjunto"
// @Success 201 {object} map[string]string
// @Router /records/upload [post]
func uploadHandler(uploader blob.Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if uploader == nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "object storage not configured")
			return
		}

		// 32 MB en memoria; el resto va a disco temporal
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "file field is required")
			return
		}
		defer file.Close()

		url, err := uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "upload failed")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, map[string]string{"file_url": url})
	}
}

func toRecordResponse(rec MedicalRecord) recordResponse {
	return recordResponse{
		ID:           rec.ID,
		PatientID:    rec.PatientID,
		DoctorID:     rec.DoctorID,
		VisitDate:    rec.VisitDate,
		Observations: rec.Observations,
		Diagnosis:    rec.Diagnosis,
		Treatment:    rec.Treatment,
		FileURL:      rec.FileURL,
		PatientName:  rec.PatientName,
		DoctorName:   rec.DoctorName,
	}
}
