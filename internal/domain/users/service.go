package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
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
	Cedula   string
	FullName string
	Email    string
	Phone    string
	Role     string
	Password string
	Schedule string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	if strings.TrimSpace(in.Cedula) == "" {
		return User{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.FullName) == "" {
		return User{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Email) == "" {
		return User{}, ErrInvalidInput
	}
	if !ValidRole(strings.TrimSpace(in.Role)) {
		return User{}, ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{
		Cedula:       strings.TrimSpace(in.Cedula),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         strings.TrimSpace(in.Role),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UnixMilli(),
		Schedule:     in.Schedule,
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByEmail(ctx, email)
}

type UpdateFields struct {
	Cedula   *string
	FullName *string
	Email    *string
	Phone    *string
	Role     *string
	Password *string // en claro; se hashea acá
	Schedule *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateFields) (User, error) {
	if id <= 0 {
		return User{}, ErrInvalidInput
	}
	if in.Role != nil && !ValidRole(*in.Role) {
		return User{}, ErrInvalidInput
	}

	upd := UpdateInput{
		Cedula:   in.Cedula,
		FullName: in.FullName,
		Phone:    in.Phone,
		Role:     in.Role,
		Schedule: in.Schedule,
	}
	if in.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*in.Email))
		upd.Email = &e
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			return User{}, ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		h := string(hash)
		upd.PasswordHash = &h
	}

	if err := s.repo.Update(ctx, id, upd); err != nil {
		return User{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// CheckPassword compara la clave contra el hash guardado.
func (s *Service) CheckPassword(u User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ResetPassword reescribe el hash (flujo de recuperación).
func (s *Service) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	if id <= 0 || len(newPassword) < 6 {
		return ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hash)
	return s.repo.Update(ctx, id, UpdateInput{PasswordHash: &h})
}
