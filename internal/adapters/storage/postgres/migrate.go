package postgres

import (
	"context"
	"database/sql"
	"strings"
)

// Esquema base. Las migraciones posteriores son aditivas y se aplican abajo.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS owners (
		id        BIGSERIAL PRIMARY KEY,
		cedula    TEXT NOT NULL DEFAULT '',
		full_name TEXT NOT NULL DEFAULT '',
		phone     TEXT NOT NULL DEFAULT '',
		email     TEXT NOT NULL DEFAULT '',
		address   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		id         BIGSERIAL PRIMARY KEY,
		owner_id   BIGINT NOT NULL REFERENCES owners(id) ON DELETE CASCADE,
		name       TEXT NOT NULL DEFAULT '',
		species    TEXT NOT NULL DEFAULT '',
		breed      TEXT NOT NULL DEFAULT '',
		age_months INTEGER NOT NULL DEFAULT 0,
		weight_kg  DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		cedula        TEXT NOT NULL DEFAULT '',
		full_name     TEXT NOT NULL DEFAULT '',
		email         TEXT NOT NULL DEFAULT '',
		phone         TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		created_at    BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id               BIGSERIAL PRIMARY KEY,
		patient_id       BIGINT NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
		doctor_id        BIGINT NOT NULL REFERENCES users(id),
		assistant_id     BIGINT REFERENCES users(id),
		type             TEXT NOT NULL DEFAULT '',
		start_time       TIMESTAMPTZ NOT NULL,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		status           TEXT NOT NULL DEFAULT 'Programada'
	)`,
	`CREATE TABLE IF NOT EXISTS hospitalizations (
		id                    BIGSERIAL PRIMARY KEY,
		patient_id            BIGINT NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
		doctor_id             BIGINT NOT NULL REFERENCES users(id),
		entry_date            TIMESTAMPTZ NOT NULL,
		reason                TEXT NOT NULL DEFAULT '',
		diagnosis_preliminary TEXT NOT NULL DEFAULT '',
		alert_message         TEXT NOT NULL DEFAULT '',
		alert_time            TEXT NOT NULL DEFAULT '',
		status                TEXT NOT NULL DEFAULT 'Observación',
		treatment_plan        TEXT NOT NULL DEFAULT '',
		notes                 TEXT NOT NULL DEFAULT '',
		weight_entry          DOUBLE PRECISION,
		discharge_date        TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS hospitalization_checks (
		id                 BIGSERIAL PRIMARY KEY,
		hospitalization_id BIGINT NOT NULL REFERENCES hospitalizations(id) ON DELETE CASCADE,
		check_time         TIMESTAMPTZ NOT NULL,
		temperature        DOUBLE PRECISION,
		heart_rate         INTEGER,
		respiratory_rate   INTEGER,
		observations       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS medical_records (
		id           BIGSERIAL PRIMARY KEY,
		patient_id   BIGINT NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
		doctor_id    BIGINT NOT NULL REFERENCES users(id),
		visit_date   BIGINT NOT NULL DEFAULT 0,
		observations TEXT NOT NULL DEFAULT '',
		diagnosis    TEXT NOT NULL DEFAULT '',
		treatment    TEXT NOT NULL DEFAULT '',
		file_url     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value BYTEA NOT NULL
	)`,
}

// Columnas agregadas después del esquema inicial. Se toleran los errores de
// "ya existe" para que migrar sea idempotente sin tabla de versiones.
var additive = []string{
	`ALTER TABLE users ADD COLUMN schedule TEXT NOT NULL DEFAULT ''`,
}

// Migrate crea el esquema completo y aplica las migraciones aditivas.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	for _, stmt := range additive {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			if isDuplicate(err) {
				continue
			}
			return err
		}
	}
	return nil
}

func isDuplicate(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate column")
}
