package appointments

import (
	"context"
	"time"
)

// PatchAssistant permite diferenciar "no enviado" de "enviar null"
// (quitar el asistente de la cita).
type PatchAssistant struct {
	Present bool
	Value   *int64
}

// UpdateInput es un PATCH real: nil = no tocar. Los campos derivados de joins
// quedan fuera del SET dinámico.
type UpdateInput struct {
	PatientID       *int64
	DoctorID        *int64
	Assistant       PatchAssistant
	Type            *string
	StartTime       *time.Time
	DurationMinutes *int
	Status          *string
}

type Repository interface {
	GetAll(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)
	Create(ctx context.Context, a Appointment) (Appointment, error)
	Update(ctx context.Context, id int64, in UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
