package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-console/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const appointmentSelect = `
	SELECT
		a.id, a.patient_id, a.doctor_id, a.assistant_id,
		a.type, a.start_time, a.duration_minutes, a.status,
		COALESCE(p.name, '')       AS patient_name,
		COALESCE(o.full_name, '')  AS owner_name,
		COALESCE(u1.full_name, '') AS doctor_name,
		COALESCE(u2.full_name, '') AS assistant_name
	FROM appointments a
	LEFT JOIN patients p ON a.patient_id = p.id
	LEFT JOIN owners o   ON p.owner_id = o.id
	LEFT JOIN users u1   ON a.doctor_id = u1.id
	LEFT JOIN users u2   ON a.assistant_id = u2.id`

func scanAppointment(row interface{ Scan(...any) error }) (appointments.Appointment, error) {
	var (
		a         appointments.Appointment
		assistant sql.NullInt64
	)
	err := row.Scan(
		&a.ID, &a.PatientID, &a.DoctorID, &assistant,
		&a.Type, &a.StartTime, &a.DurationMinutes, &a.Status,
		&a.PatientName, &a.OwnerName, &a.DoctorName, &a.AssistantName,
	)
	if err != nil {
		return appointments.Appointment{}, err
	}
	if assistant.Valid {
		a.AssistantID = &assistant.Int64
	}
	return a, nil
}

func (r *AppointmentsRepo) GetAll(ctx context.Context) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, appointmentSelect+`
	ORDER BY a.start_time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, appointmentSelect+`
	WHERE a.id = $1`, id)

	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	var assistant sql.NullInt64
	if a.AssistantID != nil {
		assistant = sql.NullInt64{Int64: *a.AssistantID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, assistant_id, type, start_time, duration_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, a.PatientID, a.DoctorID, assistant, a.Type, a.StartTime, a.DurationMinutes, a.Status).Scan(&a.ID)
	if err != nil {
		return appointments.Appointment{}, err
	}
	return r.GetByID(ctx, a.ID)
}

func (r *AppointmentsRepo) Update(ctx context.Context, id int64, in appointments.UpdateInput) error {
	var b setBuilder
	if in.PatientID != nil {
		b.add("patient_id", *in.PatientID)
	}
	if in.DoctorID != nil {
		b.add("doctor_id", *in.DoctorID)
	}
	if in.Assistant.Present {
		// null explícito quita el asistente de la cita.
		if in.Assistant.Value == nil {
			b.add("assistant_id", nil)
		} else {
			b.add("assistant_id", *in.Assistant.Value)
		}
	}
	if in.Type != nil {
		b.add("type", *in.Type)
	}
	if in.StartTime != nil {
		b.add("start_time", *in.StartTime)
	}
	if in.DurationMinutes != nil {
		b.add("duration_minutes", *in.DurationMinutes)
	}
	if in.Status != nil {
		b.add("status", *in.Status)
	}
	if b.empty() {
		return nil
	}

	q, args := b.query("appointments", id)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}
