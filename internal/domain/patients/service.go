package patients

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("patient not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	OwnerID   int64
	Name      string
	Species   string
	Breed     string
	AgeMonths int
	WeightKg  float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Patient, error) {
	if in.OwnerID <= 0 {
		return Patient{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Patient{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Patient{}, ErrInvalidInput
	}

	p := Patient{
		OwnerID:   in.OwnerID,
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		AgeMonths: in.AgeMonths,
		WeightKg:  in.WeightKg,
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetAll(ctx context.Context) ([]Patient, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Patient, error) {
	if id <= 0 {
		return Patient{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Patient, error) {
	if id <= 0 {
		return Patient{}, ErrInvalidInput
	}
	if err := s.repo.Update(ctx, id, in); err != nil {
		return Patient{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
