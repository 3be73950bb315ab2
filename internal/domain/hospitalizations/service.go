package hospitalizations

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("hospitalization not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	PatientID            int64
	DoctorID             int64
	EntryDate            *time.Time // nil = ahora
	Reason               string
	DiagnosisPreliminary string
	AlertMessage         string
	AlertTime            string
	Status               string // vacío = Observación
	TreatmentPlan        string
	Notes                string
	WeightEntry          *float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Hospitalization, error) {
	if in.PatientID <= 0 || in.DoctorID <= 0 {
		return Hospitalization{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Reason) == "" {
		return Hospitalization{}, ErrInvalidInput
	}

	entry := s.now()
	if in.EntryDate != nil {
		entry = *in.EntryDate
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = string(StatusObservation)
	}
	if !ValidStatus(status) {
		return Hospitalization{}, ErrInvalidInput
	}

	h := Hospitalization{
		PatientID:            in.PatientID,
		DoctorID:             in.DoctorID,
		EntryDate:            entry,
		Reason:               strings.TrimSpace(in.Reason),
		DiagnosisPreliminary: strings.TrimSpace(in.DiagnosisPreliminary),
		AlertMessage:         strings.TrimSpace(in.AlertMessage),
		AlertTime:            strings.TrimSpace(in.AlertTime),
		Status:               status,
		TreatmentPlan:        strings.TrimSpace(in.TreatmentPlan),
		Notes:                strings.TrimSpace(in.Notes),
		WeightEntry:          in.WeightEntry,
	}
	return s.repo.Create(ctx, h)
}

func (s *Service) GetAll(ctx context.Context) ([]Hospitalization, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Hospitalization, error) {
	if id <= 0 {
		return Hospitalization{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Hospitalization, error) {
	if id <= 0 {
		return Hospitalization{}, ErrInvalidInput
	}
	if in.Status != nil && !ValidStatus(*in.Status) {
		return Hospitalization{}, ErrInvalidInput
	}
	if err := s.repo.Update(ctx, id, in); err != nil {
		return Hospitalization{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

type CheckInput struct {
	CheckTime       *time.Time // nil = ahora
	Temperature     *float64
	HeartRate       *int
	RespiratoryRate *int
	Observations    string
}

// AddCheck registra un control de signos vitales de la internación.
func (s *Service) AddCheck(ctx context.Context, hospitalizationID int64, in CheckInput) (Check, error) {
	if hospitalizationID <= 0 {
		return Check{}, ErrInvalidInput
	}
	// La internación tiene que existir; los checks huérfanos no se toleran.
	if _, err := s.repo.GetByID(ctx, hospitalizationID); err != nil {
		return Check{}, err
	}

	when := s.now()
	if in.CheckTime != nil {
		when = *in.CheckTime
	}

	c := Check{
		HospitalizationID: hospitalizationID,
		CheckTime:         when,
		Temperature:       in.Temperature,
		HeartRate:         in.HeartRate,
		RespiratoryRate:   in.RespiratoryRate,
		Observations:      strings.TrimSpace(in.Observations),
	}
	return s.repo.AddCheck(ctx, c)
}

func (s *Service) ListChecks(ctx context.Context, hospitalizationID int64) ([]Check, error) {
	if hospitalizationID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListChecks(ctx, hospitalizationID)
}
