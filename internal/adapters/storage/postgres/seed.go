package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// seedData refleja el fixture JSON de carga masiva: propietarios y pacientes
// obligatorios, usuarios y citas opcionales para ambientes de prueba.
type seedData struct {
	Owners []struct {
		ID       int64  `json:"id"`
		Cedula   string `json:"cedula"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		Address  string `json:"address"`
	} `json:"owners"`
	Patients []struct {
		ID        int64   `json:"id"`
		OwnerID   int64   `json:"owner_id"`
		Name      string  `json:"name"`
		Species   string  `json:"species"`
		Breed     string  `json:"breed"`
		AgeMonths int     `json:"age_months"`
		WeightKg  float64 `json:"weight_kg"`
	} `json:"patients"`
	Users []struct {
		ID           int64  `json:"id"`
		Cedula       string `json:"cedula"`
		FullName     string `json:"full_name"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
		Role         string `json:"role"`
		PasswordHash string `json:"password_hash"`
	} `json:"users"`
	Appointments []struct {
		ID              int64  `json:"id"`
		PatientID       int64  `json:"patient_id"`
		DoctorID        int64  `json:"doctor_id"`
		AssistantID     *int64 `json:"assistant_id"`
		Type            string `json:"type"`
		StartTime       string `json:"start_time"`
		DurationMinutes int    `json:"duration_minutes"`
		Status          string `json:"status"`
	} `json:"appointments"`
}

const seedBatchSize = 20

// Seed carga el fixture JSON dentro de una transacción. Limpia las tablas
// afectadas antes de insertar para que los IDs del fixture queden intactos.
func Seed(ctx context.Context, db *sql.DB, path string, log zerolog.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("leyendo fixture %s: %w", path, err)
	}

	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parseando fixture: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"appointments", "patients", "owners", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	log.Info().Int("owners", len(data.Owners)).Msg("insertando propietarios")
	for i := 0; i < len(data.Owners); i += seedBatchSize {
		end := min(i+seedBatchSize, len(data.Owners))
		for _, o := range data.Owners[i:end] {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO owners (id, cedula, full_name, phone, email, address)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, o.ID, o.Cedula, o.FullName, o.Phone, o.Email, o.Address); err != nil {
				return err
			}
		}
	}

	log.Info().Int("patients", len(data.Patients)).Msg("insertando pacientes")
	for i := 0; i < len(data.Patients); i += seedBatchSize {
		end := min(i+seedBatchSize, len(data.Patients))
		for _, p := range data.Patients[i:end] {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO patients (id, owner_id, name, species, breed, age_months, weight_kg)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, p.ID, p.OwnerID, p.Name, p.Species, p.Breed, p.AgeMonths, p.WeightKg); err != nil {
				return err
			}
		}
	}

	if len(data.Users) > 0 {
		log.Info().Int("users", len(data.Users)).Msg("insertando usuarios")
		for _, u := range data.Users {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO users (id, cedula, full_name, email, phone, role, password_hash)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, u.ID, u.Cedula, u.FullName, u.Email, u.Phone, u.Role, u.PasswordHash); err != nil {
				return err
			}
		}
	}

	if len(data.Appointments) > 0 {
		log.Info().Int("appointments", len(data.Appointments)).Msg("insertando citas")
		for _, a := range data.Appointments {
			var assistant sql.NullInt64
			if a.AssistantID != nil {
				assistant = sql.NullInt64{Int64: *a.AssistantID, Valid: true}
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO appointments (id, patient_id, doctor_id, assistant_id, type, start_time, duration_minutes, status)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, a.ID, a.PatientID, a.DoctorID, assistant, a.Type, a.StartTime, a.DurationMinutes, a.Status); err != nil {
				return err
			}
		}
	}

	// Realinea las secuencias con los IDs explícitos del fixture.
	for _, table := range []string{"owners", "patients", "users", "appointments"} {
		q := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))",
			table, table,
		)
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return err
		}
	}

	return tx.Commit()
}
