package owners

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("owner not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Cedula   string
	FullName string
	Phone    string
	Email    string
	Address  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	if strings.TrimSpace(in.Cedula) == "" {
		return Owner{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.FullName) == "" {
		return Owner{}, ErrInvalidInput
	}

	o := Owner{
		Cedula:   strings.TrimSpace(in.Cedula),
		FullName: strings.TrimSpace(in.FullName),
		Phone:    strings.TrimSpace(in.Phone),
		Email:    strings.TrimSpace(in.Email),
		Address:  strings.TrimSpace(in.Address),
	}
	return s.repo.Create(ctx, o)
}

func (s *Service) GetAll(ctx context.Context) ([]Owner, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	if id <= 0 {
		return Owner{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Update aplica solo los campos presentes (SET dinámico, sin tocar el resto).
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Owner, error) {
	if id <= 0 {
		return Owner{}, ErrInvalidInput
	}
	if err := s.repo.Update(ctx, id, in); err != nil {
		return Owner{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
