package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-console/internal/domain/hospitalizations"
)

type HospitalizationsRepo struct {
	db *sql.DB
}

func NewHospitalizationsRepo(db *sql.DB) *HospitalizationsRepo {
	return &HospitalizationsRepo{db: db}
}

const hospitalizationSelect = `
	SELECT
		h.id, h.patient_id, h.doctor_id,
		h.entry_date, h.reason, h.diagnosis_preliminary,
		h.alert_message, h.alert_time, h.status,
		h.treatment_plan, h.notes, h.weight_entry, h.discharge_date,
		COALESCE(p.name, '')      AS patient_name,
		COALESCE(u.full_name, '') AS doctor_name
	FROM hospitalizations h
	LEFT JOIN patients p ON h.patient_id = p.id
	LEFT JOIN users u    ON h.doctor_id = u.id`

func scanHospitalization(row interface{ Scan(...any) error }) (hospitalizations.Hospitalization, error) {
	var (
		h         hospitalizations.Hospitalization
		weight    sql.NullFloat64
		discharge sql.NullTime
	)
	err := row.Scan(
		&h.ID, &h.PatientID, &h.DoctorID,
		&h.EntryDate, &h.Reason, &h.DiagnosisPreliminary,
		&h.AlertMessage, &h.AlertTime, &h.Status,
		&h.TreatmentPlan, &h.Notes, &weight, &discharge,
		&h.PatientName, &h.DoctorName,
	)
	if err != nil {
		return hospitalizations.Hospitalization{}, err
	}
	if weight.Valid {
		h.WeightEntry = &weight.Float64
	}
	if discharge.Valid {
		h.DischargeDate = &discharge.Time
	}
	return h, nil
}

func (r *HospitalizationsRepo) GetAll(ctx context.Context) ([]hospitalizations.Hospitalization, error) {
	rows, err := r.db.QueryContext(ctx, hospitalizationSelect+`
	ORDER BY h.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]hospitalizations.Hospitalization, 0)
	for rows.Next() {
		h, err := scanHospitalization(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HospitalizationsRepo) GetByID(ctx context.Context, id int64) (hospitalizations.Hospitalization, error) {
	row := r.db.QueryRowContext(ctx, hospitalizationSelect+`
	WHERE h.id = $1`, id)

	h, err := scanHospitalization(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return hospitalizations.Hospitalization{}, hospitalizations.ErrNotFound
		}
		return hospitalizations.Hospitalization{}, err
	}
	return h, nil
}

func (r *HospitalizationsRepo) Create(ctx context.Context, h hospitalizations.Hospitalization) (hospitalizations.Hospitalization, error) {
	var weight sql.NullFloat64
	if h.WeightEntry != nil {
		weight = sql.NullFloat64{Float64: *h.WeightEntry, Valid: true}
	}
	var discharge sql.NullTime
	if h.DischargeDate != nil {
		discharge = sql.NullTime{Time: *h.DischargeDate, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO hospitalizations
			(patient_id, doctor_id, entry_date, reason, diagnosis_preliminary,
			 alert_message, alert_time, status, treatment_plan, notes, weight_entry, discharge_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, h.PatientID, h.DoctorID, h.EntryDate, h.Reason, h.DiagnosisPreliminary,
		h.AlertMessage, h.AlertTime, h.Status, h.TreatmentPlan, h.Notes, weight, discharge).Scan(&h.ID)
	if err != nil {
		return hospitalizations.Hospitalization{}, err
	}
	return r.GetByID(ctx, h.ID)
}

func (r *HospitalizationsRepo) Update(ctx context.Context, id int64, in hospitalizations.UpdateInput) error {
	var b setBuilder
	if in.PatientID != nil {
		b.add("patient_id", *in.PatientID)
	}
	if in.DoctorID != nil {
		b.add("doctor_id", *in.DoctorID)
	}
	if in.EntryDate != nil {
		b.add("entry_date", *in.EntryDate)
	}
	if in.Reason != nil {
		b.add("reason", *in.Reason)
	}
	if in.DiagnosisPreliminary != nil {
		b.add("diagnosis_preliminary", *in.DiagnosisPreliminary)
	}
	if in.AlertMessage != nil {
		b.add("alert_message", *in.AlertMessage)
	}
	if in.AlertTime != nil {
		b.add("alert_time", *in.AlertTime)
	}
	if in.Status != nil {
		b.add("status", *in.Status)
	}
	if in.TreatmentPlan != nil {
		b.add("treatment_plan", *in.TreatmentPlan)
	}
	if in.Notes != nil {
		b.add("notes", *in.Notes)
	}
	if in.WeightEntry != nil {
		b.add("weight_entry", *in.WeightEntry)
	}
	if in.DischargeDate != nil {
		b.add("discharge_date", *in.DischargeDate)
	}
	if b.empty() {
		return nil
	}

	q, args := b.query("hospitalizations", id)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return hospitalizations.ErrNotFound
	}
	return nil
}

func (r *HospitalizationsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hospitalizations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return hospitalizations.ErrNotFound
	}
	return nil
}

func (r *HospitalizationsRepo) ListChecks(ctx context.Context, hospitalizationID int64) ([]hospitalizations.Check, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, hospitalization_id, check_time, temperature, heart_rate, respiratory_rate, observations
		FROM hospitalization_checks
		WHERE hospitalization_id = $1
		ORDER BY check_time DESC
	`, hospitalizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]hospitalizations.Check, 0)
	for rows.Next() {
		var (
			c    hospitalizations.Check
			temp sql.NullFloat64
			hr   sql.NullInt64
			rr   sql.NullInt64
		)
		if err := rows.Scan(&c.ID, &c.HospitalizationID, &c.CheckTime, &temp, &hr, &rr, &c.Observations); err != nil {
			return nil, err
		}
		if temp.Valid {
			c.Temperature = &temp.Float64
		}
		if hr.Valid {
			v := int(hr.Int64)
			c.HeartRate = &v
		}
		if rr.Valid {
			v := int(rr.Int64)
			c.RespiratoryRate = &v
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *HospitalizationsRepo) AddCheck(ctx context.Context, c hospitalizations.Check) (hospitalizations.Check, error) {
	var temp sql.NullFloat64
	if c.Temperature != nil {
		temp = sql.NullFloat64{Float64: *c.Temperature, Valid: true}
	}
	var hr sql.NullInt64
	if c.HeartRate != nil {
		hr = sql.NullInt64{Int64: int64(*c.HeartRate), Valid: true}
	}
	var rr sql.NullInt64
	if c.RespiratoryRate != nil {
		rr = sql.NullInt64{Int64: int64(*c.RespiratoryRate), Valid: true}
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO hospitalization_checks (hospitalization_id, check_time, temperature, heart_rate, respiratory_rate, observations)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, c.HospitalizationID, c.CheckTime, temp, hr, rr, c.Observations).Scan(&c.ID)
	if err != nil {
		return hospitalizations.Check{}, err
	}
	return c, nil
}
