package appointments

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")

	// ErrMissingSelection es el "alert" bloqueante de la consola: falta elegir
	// paciente o doctor antes de guardar.
	ErrMissingSelection = errors.New("patient and doctor are required")
)

// DurationResolver resuelve la duración por defecto del tipo de cita elegido.
// Lo implementa schedule.ConfigService.
type DurationResolver interface {
	DefaultDuration(ctx context.Context, typeID string) (int, bool)
}

type Service struct {
	repo      Repository
	durations DurationResolver
}

func NewService(repo Repository, durations DurationResolver) *Service {
	return &Service{
		repo:      repo,
		durations: durations,
	}
}

type CreateInput struct {
	PatientID       int64
	DoctorID        int64
	AssistantID     *int64
	Type            string
	StartTime       time.Time
	DurationMinutes int // 0 = usar la duración por defecto del tipo
}

// Create valida la selección, completa la duración por defecto del tipo si no
// viene explícita y persiste la cita como Programada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if in.PatientID <= 0 || in.DoctorID <= 0 {
		return Appointment{}, ErrMissingSelection
	}
	if strings.TrimSpace(in.Type) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if in.StartTime.IsZero() {
		return Appointment{}, ErrInvalidInput
	}

	duration := in.DurationMinutes
	if duration <= 0 {
		d, ok := s.durations.DefaultDuration(ctx, in.Type)
		if !ok {
			return Appointment{}, ErrInvalidInput
		}
		duration = d
	}

	a := Appointment{
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		AssistantID:     in.AssistantID,
		Type:            strings.TrimSpace(in.Type),
		StartTime:       in.StartTime,
		DurationMinutes: duration,
		Status:          string(StatusScheduled),
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) GetAll(ctx context.Context) ([]Appointment, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	if id <= 0 {
		return Appointment{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Appointment, error) {
	if id <= 0 {
		return Appointment{}, ErrInvalidInput
	}
	if in.PatientID != nil && *in.PatientID <= 0 {
		return Appointment{}, ErrMissingSelection
	}
	if in.DoctorID != nil && *in.DoctorID <= 0 {
		return Appointment{}, ErrMissingSelection
	}
	if in.Status != nil && !ValidStatus(*in.Status) {
		return Appointment{}, ErrInvalidInput
	}

	// Cambiar el tipo sin mandar duración re-aplica el default del tipo nuevo.
	if in.Type != nil && in.DurationMinutes == nil {
		if d, ok := s.durations.DefaultDuration(ctx, *in.Type); ok {
			in.DurationMinutes = &d
		}
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return Appointment{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
