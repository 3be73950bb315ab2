package authn

import (
	"context"
	"errors"

	"vet-clinic-console/internal/domain/users"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// TokenIssuer emite y valida los tokens de sesión y de recuperación.
// Lo implementa adapters/auth/token.Manager.
type TokenIssuer interface {
	IssueSession(userID int64, email, role string) (string, error)
	IssueRecovery(userID int64, email string) (string, error)
	VerifyRecovery(token string) (int64, error)
}

type Service struct {
	users  *users.Service
	tokens TokenIssuer
}

func NewService(usersSvc *users.Service, tokens TokenIssuer) *Service {
	return &Service{
		users:  usersSvc,
		tokens: tokens,
	}
}

type Session struct {
	Token    string
	UserID   int64
	FullName string
	Email    string
	Role     string
}

// Login verifica email + clave y emite el token de sesión de la consola.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Mismo error para "no existe" y "clave mala": no filtrar cuentas.
		return Session{}, ErrInvalidCredentials
	}
	if !s.users.CheckPassword(u, password) {
		return Session{}, ErrInvalidCredentials
	}

	tok, err := s.tokens.IssueSession(u.ID, u.Email, u.Role)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Token:    tok,
		UserID:   u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}, nil
}

// RequestRecovery emite un token de recuperación de corta vida para el email
// dado. Devuelve ok=false sin error si la cuenta no existe (la respuesta HTTP
// es la misma en ambos casos).
func (s *Service) RequestRecovery(ctx context.Context, email string) (string, bool) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", false
	}
	tok, err := s.tokens.IssueRecovery(u.ID, u.Email)
	if err != nil {
		return "", false
	}
	return tok, true
}

// ResetPassword valida el token de recuperación y reescribe la clave.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.tokens.VerifyRecovery(token)
	if err != nil {
		return ErrInvalidToken
	}
	return s.users.ResetPassword(ctx, userID, newPassword)
}
