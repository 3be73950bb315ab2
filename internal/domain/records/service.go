package records

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medical record not found")
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
	PatientID    int64
	DoctorID     int64
	VisitDate    int64 // epoch ms; 0 = ahora
	Observations string
	Diagnosis    string
	Treatment    string
	FileURL      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (MedicalRecord, error) {
	if in.PatientID <= 0 || in.DoctorID <= 0 {
		return MedicalRecord{}, ErrInvalidInput
	}

	visit := in.VisitDate
	if visit == 0 {
		visit = s.now().UnixMilli()
	}

	rec := MedicalRecord{
		PatientID:    in.PatientID,
		DoctorID:     in.DoctorID,
		VisitDate:    visit,
		Observations: strings.TrimSpace(in.Observations),
		Diagnosis:    strings.TrimSpace(in.Diagnosis),
		Treatment:    strings.TrimSpace(in.Treatment),
		FileURL:      strings.TrimSpace(in.FileURL),
	}
	return s.repo.Create(ctx, rec)
}

func (s *Service) GetAll(ctx context.Context) ([]MedicalRecord, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
