package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-console/internal/domain/records"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) GetAll(ctx context.Context) ([]records.MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			m.id, m.patient_id, m.doctor_id,
			m.visit_date, m.observations, m.diagnosis, m.treatment, m.file_url,
			COALESCE(p.name, '')      AS patient_name,
			COALESCE(u.full_name, '') AS doctor_name
		FROM medical_records m
		LEFT JOIN patients p ON m.patient_id = p.id
		LEFT JOIN users u    ON m.doctor_id = u.id
		ORDER BY m.visit_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.MedicalRecord, 0)
	for rows.Next() {
		var rec records.MedicalRecord
		if err := rows.Scan(
			&rec.ID, &rec.PatientID, &rec.DoctorID,
			&rec.VisitDate, &rec.Observations, &rec.Diagnosis, &rec.Treatment, &rec.FileURL,
			&rec.PatientName, &rec.DoctorName,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) Create(ctx context.Context, rec records.MedicalRecord) (records.MedicalRecord, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medical_records (patient_id, doctor_id, visit_date, observations, diagnosis, treatment, file_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, rec.PatientID, rec.DoctorID, rec.VisitDate, rec.Observations, rec.Diagnosis, rec.Treatment, rec.FileURL).Scan(&rec.ID)
	if err != nil {
		return records.MedicalRecord{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return records.ErrNotFound
	}
	return nil
}
