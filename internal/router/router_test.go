package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"vet-clinic-console/internal/adapters/auth/token"
	"vet-clinic-console/internal/adapters/blobstore"
	"vet-clinic-console/internal/router"
)

func TestHTTP_EndToEnd_ClinicFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil,
		Uploader:     blobstore.NewMemoryStore(),
		Logger:       zerolog.Nop(),
	}))
	defer ts.Close()

	staffID := "staff-1"

	// 1) Sin credenciales => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/owners", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without auth, got %d", st)
		}
	}

	// 2) Alta de propietario
	ownerID := createEntity(t, ts.URL, staffID, "/owners", map[string]any{
		"cedula":    "1-1234-5678",
		"full_name": "María Rodríguez",
		"phone":     "8888-1111",
		"email":     "maria@example.com",
		"address":   "San José",
	})

	// 3) Alta de paciente del propietario
	patientID := createEntity(t, ts.URL, staffID, "/patients", map[string]any{
		"owner_id":   ownerID,
		"name":       "Rocky",
		"species":    "Perro",
		"breed":      "Labrador",
		"age_months": 36,
		"weight_kg":  28.5,
	})

	// 4) Alta de doctor y asistente
	doctorID := createEntity(t, ts.URL, staffID, "/users", map[string]any{
		"cedula":    "2-2222-2222",
		"full_name": "Dra. Campos",
		"email":     "campos@clinica.cr",
		"role":      "Doctor",
		"password":  "secreta1",
	})
	assistantID := createEntity(t, ts.URL, staffID, "/users", map[string]any{
		"cedula":    "3-3333-3333",
		"full_name": "Luis Mora",
		"email":     "mora@clinica.cr",
		"role":      "Asistente",
		"password":  "secreta2",
	})

	// 5) Cita Cirugía sin duración explícita => 120 min por defecto
	start := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)
	var apptID int64
	{
		st, body := doReq(t, ts.URL, "POST", "/appointments", staffID, map[string]any{
			"patient_id":   patientID,
			"doctor_id":    doctorID,
			"assistant_id": assistantID,
			"type":         "Cirugía",
			"start_time":   start.Format(time.RFC3339),
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create appointment, got %d body=%s", st, string(body))
		}

		var resp struct {
			ID              int64  `json:"id"`
			DurationMinutes int    `json:"duration_minutes"`
			Status          string `json:"status"`
			PatientName     string `json:"patient_name"`
			OwnerName       string `json:"owner_name"`
			AssistantName   string `json:"assistant_name"`
		}
		mustUnmarshal(t, body, &resp)
		apptID = resp.ID
		if resp.DurationMinutes != 120 {
			t.Errorf("surgery should default to 120 min, got %d", resp.DurationMinutes)
		}
		if resp.Status != "Programada" {
			t.Errorf("new appointment should be Programada, got %q", resp.Status)
		}
		if resp.PatientName != "Rocky" || resp.OwnerName != "María Rodríguez" {
			t.Errorf("missing denormalized names: %+v", resp)
		}
		if resp.AssistantName != "Luis Mora" {
			t.Errorf("expected assistant name, got %q", resp.AssistantName)
		}
	}

	// 6) Cita sin paciente => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/appointments", staffID, map[string]any{
			"doctor_id":  doctorID,
			"type":       "Consulta",
			"start_time": start.Format(time.RFC3339),
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for appointment without patient, got %d", st)
		}
	}

	// 7) Quitar el asistente con "assistant_id": null
	{
		st, body := doReqRaw(t, ts.URL, "PATCH", apptPath(apptID), staffID,
			[]byte(`{"assistant_id": null, "status": "Completada"}`))
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch appointment, got %d body=%s", st, string(body))
		}

		var resp struct {
			AssistantID   *int64 `json:"assistant_id"`
			AssistantName string `json:"assistant_name"`
			Status        string `json:"status"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.AssistantID != nil || resp.AssistantName != "" {
			t.Errorf("assistant should be cleared, got %+v", resp)
		}
		if resp.Status != "Completada" {
			t.Errorf("expected Completada, got %q", resp.Status)
		}
	}

	// 8) Grilla de agenda en vista día: bloque posicionado por hora de inicio
	{
		st, body := doReq(t, ts.URL, "GET", "/schedule?view=dia&date=2025-03-12", staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 schedule grid, got %d body=%s", st, string(body))
		}

		var grid struct {
			View string `json:"view"`
			Days []struct {
				Date         string `json:"date"`
				Appointments []struct {
					ID     int64   `json:"id"`
					Top    float64 `json:"top"`
					Height float64 `json:"height"`
				} `json:"appointments"`
			} `json:"days"`
		}
		mustUnmarshal(t, body, &grid)
		if len(grid.Days) != 1 || grid.Days[0].Date != "2025-03-12" {
			t.Fatalf("unexpected day grid: %s", string(body))
		}
		blocks := grid.Days[0].Appointments
		if len(blocks) != 1 || blocks[0].ID != apptID {
			t.Fatalf("expected the surgery block, got %s", string(body))
		}
		// 09:30 => 9*96 + 30*96/60 = 912; 120 min => 120*96/60 - 8 = 184
		if blocks[0].Top != 912 {
			t.Errorf("expected top 912, got %v", blocks[0].Top)
		}
		if blocks[0].Height != 184 {
			t.Errorf("expected height 184, got %v", blocks[0].Height)
		}
	}

	// 9) Configuración compartida de tipos: guardar y que afecte nuevas citas
	{
		st, body := doReq(t, ts.URL, "PUT", "/schedule/types", staffID, []map[string]any{
			{"id": "Consulta", "label": "Consulta", "duration": 45, "color": "bg-primary", "icon": "stethoscope"},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 save types, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "POST", "/appointments", staffID, map[string]any{
			"patient_id": patientID,
			"doctor_id":  doctorID,
			"type":       "Consulta",
			"start_time": start.Add(4 * time.Hour).Format(time.RFC3339),
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create consultation, got %d body=%s", st, string(body))
		}
		var resp struct {
			DurationMinutes int `json:"duration_minutes"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.DurationMinutes != 45 {
			t.Errorf("consultation should use saved duration 45, got %d", resp.DurationMinutes)
		}
	}

	// 10) PATCH parcial de propietario: solo teléfono
	{
		st, body := doReq(t, ts.URL, "PATCH", ownerPath(ownerID), staffID, map[string]any{
			"phone": "8888-2222",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch owner, got %d body=%s", st, string(body))
		}
		var resp struct {
			FullName string `json:"full_name"`
			Phone    string `json:"phone"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Phone != "8888-2222" || resp.FullName != "María Rodríguez" {
			t.Errorf("partial patch touched other fields: %+v", resp)
		}
	}

	// 11) Internación con estado por defecto + control de signos vitales
	var hospID int64
	{
		st, body := doReq(t, ts.URL, "POST", "/hospitalizations", staffID, map[string]any{
			"patient_id": patientID,
			"doctor_id":  doctorID,
			"reason":     "Postoperatorio",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create hospitalization, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		}
		mustUnmarshal(t, body, &resp)
		hospID = resp.ID
		if resp.Status != "Observación" {
			t.Errorf("default status should be Observación, got %q", resp.Status)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", hospPath(hospID)+"/checks", staffID, map[string]any{
			"temperature":      38.5,
			"heart_rate":       90,
			"respiratory_rate": 22,
			"observations":     "Estable, despierto",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add check, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", hospPath(hospID)+"/checks", staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list checks, got %d body=%s", st, string(body))
		}
		var checks []struct {
			Temperature *float64 `json:"temperature"`
		}
		mustUnmarshal(t, body, &checks)
		if len(checks) != 1 || checks[0].Temperature == nil || *checks[0].Temperature != 38.5 {
			t.Errorf("unexpected checks: %s", string(body))
		}
	}
	// Controles de una internación inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/hospitalizations/9999/checks", staffID, map[string]any{
			"observations": "no debería guardarse",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 check on unknown hospitalization, got %d", st)
		}
	}

	// 12) Subida de adjunto y entrada de expediente
	var fileURL string
	{
		st, body := doUpload(t, ts.URL, staffID, "radiografia.png", []byte("fake-png-bytes"))
		if st != http.StatusCreated {
			t.Fatalf("expected 201 upload, got %d body=%s", st, string(body))
		}
		var resp struct {
			FileURL string `json:"file_url"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.FileURL == "" {
			t.Fatal("upload should return file_url")
		}
		fileURL = resp.FileURL
	}
	recordID := createEntity(t, ts.URL, staffID, "/records", map[string]any{
		"patient_id": patientID,
		"doctor_id":  doctorID,
		"visit_date": time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC).UnixMilli(),
		"diagnosis":  "Fractura consolidada",
		"file_url":   fileURL,
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/records", staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list records, got %d body=%s", st, string(body))
		}
		var recs []struct {
			ID          int64  `json:"id"`
			PatientName string `json:"patient_name"`
			FileURL     string `json:"file_url"`
		}
		mustUnmarshal(t, body, &recs)
		if len(recs) != 1 || recs[0].ID != recordID || recs[0].PatientName != "Rocky" {
			t.Fatalf("unexpected records: %s", string(body))
		}
	}

	// 13) Bajas y 404 posteriores
	{
		st, _ := doReq(t, ts.URL, "DELETE", recordPath(recordID), staffID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete record, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", recordPath(recordID), staffID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 double delete, got %d", st)
		}
	}
}

func TestHTTP_AuthFlow(t *testing.T) {
	mgr := token.NewManager(token.Options{Secret: "test-secret"})
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: mgr,
		Tokens:       mgr,
		Logger:       zerolog.Nop(),
	}))
	defer ts.Close()

	// Con verifier activo los headers de dev no valen
	{
		st, _ := doReq(t, ts.URL, "GET", "/owners", "staff-1", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 with debug header under real verifier, got %d", st)
		}
	}

	// Sesión inicial emitida directo por el manager (bootstrap del primer admin)
	bootstrap, err := mgr.IssueSession(1, "root@clinica.cr", "Administrativo")
	if err != nil {
		t.Fatalf("issue bootstrap session: %v", err)
	}

	st, body := doBearer(t, ts.URL, "POST", "/users", bootstrap, map[string]any{
		"cedula":    "4-4444-4444",
		"full_name": "Ana Solís",
		"email":     "Ana@Clinica.CR",
		"role":      "Doctor",
		"password":  "clave-vieja",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create user, got %d body=%s", st, string(body))
	}
	var created struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	mustUnmarshal(t, body, &created)
	if created.Email != "ana@clinica.cr" {
		t.Errorf("email should be stored lowercase, got %q", created.Email)
	}

	// Login con credenciales reales
	var sessionToken string
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "ana@clinica.cr",
			"password": "clave-vieja",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var resp struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Token == "" || resp.Role != "Doctor" {
			t.Fatalf("unexpected login response: %s", string(body))
		}
		sessionToken = resp.Token
	}

	// El token de sesión pasa RequireAuth
	{
		st, _ := doBearer(t, ts.URL, "GET", "/owners", sessionToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 with session token, got %d", st)
		}
	}

	// Clave incorrecta => 401, misma respuesta que cuenta inexistente
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "ana@clinica.cr",
			"password": "incorrecta",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 wrong password, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "nadie@clinica.cr",
			"password": "loquesea",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 unknown account, got %d", st)
		}
	}

	// Recovery responde 202 exista o no la cuenta
	for _, email := range []string{"ana@clinica.cr", "fantasma@clinica.cr"} {
		st, _ := doReq(t, ts.URL, "POST", "/auth/recovery", "", map[string]any{"email": email})
		if st != http.StatusAccepted {
			t.Fatalf("expected 202 recovery for %s, got %d", email, st)
		}
	}

	// Reset con token de recuperación válido
	recovery, err := mgr.IssueRecovery(created.ID, "ana@clinica.cr")
	if err != nil {
		t.Fatalf("issue recovery: %v", err)
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/reset-password", "", map[string]any{
			"token":        recovery,
			"new_password": "clave-nueva",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 reset, got %d body=%s", st, string(body))
		}
	}

	// Un token de sesión NO sirve como token de recuperación
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/reset-password", "", map[string]any{
			"token":        sessionToken,
			"new_password": "otra-clave",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 reset with session token, got %d", st)
		}
	}

	// Clave vieja muere, la nueva entra
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "ana@clinica.cr",
			"password": "clave-vieja",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 old password after reset, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "ana@clinica.cr",
			"password": "clave-nueva",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 new password after reset, got %d", st)
		}
	}
}

func createEntity(t *testing.T, baseURL, debugUserID, path string, payload any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, debugUserID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(body), err)
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var raw []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		raw = b
	}
	return doReqRaw(t, baseURL, method, path, debugUserID, raw)
}

func doReqRaw(t *testing.T, baseURL, method, path, debugUserID string, body []byte) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doBearer(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doUpload(t *testing.T, baseURL, debugUserID, filename string, content []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = mw.Close()

	req, err := http.NewRequest("POST", baseURL+"/records/upload", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Debug-User-ID", debugUserID)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func ownerPath(id int64) string  { return "/owners/" + strconv.FormatInt(id, 10) }
func apptPath(id int64) string   { return "/appointments/" + strconv.FormatInt(id, 10) }
func hospPath(id int64) string   { return "/hospitalizations/" + strconv.FormatInt(id, 10) }
func recordPath(id int64) string { return "/records/" + strconv.FormatInt(id, 10) }
