package token

import (
	"context"
	"testing"
	"time"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewManager(Options{Secret: "s3cret"})

	tok, err := m.IssueSession(42, "doc@clinica.cr", "Doctor")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "42" || claims.Email != "doc@clinica.cr" || claims.Role != "Doctor" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestRecoveryRoundTrip(t *testing.T) {
	m := NewManager(Options{Secret: "s3cret"})

	tok, err := m.IssueRecovery(7, "doc@clinica.cr")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := m.VerifyRecovery(tok)
	if err != nil {
		t.Fatalf("verify recovery: %v", err)
	}
	if id != 7 {
		t.Errorf("expected user 7, got %d", id)
	}
}

func TestPurposeMismatch(t *testing.T) {
	m := NewManager(Options{Secret: "s3cret"})

	session, _ := m.IssueSession(1, "a@b.cr", "Doctor")
	if _, err := m.VerifyRecovery(session); err == nil {
		t.Error("session token should not pass as recovery token")
	}

	recovery, _ := m.IssueRecovery(1, "a@b.cr")
	if _, err := m.Verify(context.Background(), recovery); err == nil {
		t.Error("recovery token should not pass as session token")
	}
}

func TestWrongSecret(t *testing.T) {
	a := NewManager(Options{Secret: "secret-a"})
	b := NewManager(Options{Secret: "secret-b"})

	tok, _ := a.IssueSession(1, "a@b.cr", "Doctor")
	if _, err := b.Verify(context.Background(), tok); err == nil {
		t.Error("token signed with another secret should fail")
	}
}

func TestExpiredToken(t *testing.T) {
	m := NewManager(Options{Secret: "s3cret", TokenTTL: time.Hour})

	base := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }
	tok, _ := m.IssueSession(1, "a@b.cr", "Doctor")

	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, err := m.Verify(context.Background(), tok); err == nil {
		t.Error("expired token should fail verification")
	}
}
