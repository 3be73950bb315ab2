package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vet-clinic-console/internal/ports/auth"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongPurpose = errors.New("token purpose mismatch")
)

// Manager firma y verifica los tokens de sesión y de recuperación de clave.
// Implementa ports/auth.AuthVerifier.
type Manager struct {
	secret   []byte
	issuer   string
	tokenTTL time.Duration
	resetTTL time.Duration
	now      func() time.Time
}

type Options struct {
	Secret   string
	TokenTTL time.Duration
	ResetTTL time.Duration
}

func NewManager(opts Options) *Manager {
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	rttl := opts.ResetTTL
	if rttl <= 0 {
		rttl = 15 * time.Minute
	}
	return &Manager{
		secret:   []byte(opts.Secret),
		issuer:   "vet-clinic-console",
		tokenTTL: ttl,
		resetTTL: rttl,
		now:      time.Now,
	}
}

type sessionClaims struct {
	Email   string `json:"email,omitempty"`
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// IssueSession emite el token que la consola guarda tras el login.
func (m *Manager) IssueSession(userID int64, email, role string) (string, error) {
	return m.sign(userID, email, role, "session", m.tokenTTL)
}

// IssueRecovery emite un token de un solo propósito para reset de clave.
func (m *Manager) IssueRecovery(userID int64, email string) (string, error) {
	return m.sign(userID, email, "", "recovery", m.resetTTL)
}

func (m *Manager) sign(userID int64, email, role, purpose string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := sessionClaims{
		Email:   email,
		Role:    role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify implementa ports/auth.AuthVerifier para tokens de sesión.
func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	claims, err := m.parse(token, "session")
	if err != nil {
		return auth.Claims{}, err
	}
	return auth.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

// VerifyRecovery valida un token de recuperación y devuelve el user id.
func (m *Manager) VerifyRecovery(token string) (int64, error) {
	claims, err := m.parse(token, "recovery")
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

func (m *Manager) parse(token, purpose string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}
