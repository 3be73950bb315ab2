package users

import (
	"context"
	"strings"
	"testing"
)

type fakeRepo struct {
	byID   map[int64]User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[int64]User), nextID: 1}
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *fakeRepo) Create(ctx context.Context, u User) (User, error) {
	u.ID = r.nextID
	r.nextID++
	r.byID[u.ID] = u
	return u, nil
}

func (r *fakeRepo) Update(ctx context.Context, id int64, in UpdateInput) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if in.Cedula != nil {
		u.Cedula = *in.Cedula
	}
	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.PasswordHash != nil {
		u.PasswordHash = *in.PasswordHash
	}
	if in.Schedule != nil {
		u.Schedule = *in.Schedule
	}
	r.byID[id] = u
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestCreate_HashesPasswordAndNormalizesEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.Create(context.Background(), CreateInput{
		Cedula:   "1-1111-1111",
		FullName: "Dra. Campos",
		Email:    "  Campos@Clinica.CR ",
		Role:     "Doctor",
		Password: "secreta1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Email != "campos@clinica.cr" {
		t.Errorf("email should be trimmed and lowercased, got %q", u.Email)
	}
	if u.PasswordHash == "secreta1" || u.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if !strings.HasPrefix(u.PasswordHash, "$2") {
		t.Errorf("expected bcrypt hash, got %q", u.PasswordHash)
	}
	if u.CreatedAt == 0 {
		t.Error("created_at (epoch ms) should be set")
	}

	if !svc.CheckPassword(u, "secreta1") {
		t.Error("CheckPassword should accept the original password")
	}
	if svc.CheckPassword(u, "otra") {
		t.Error("CheckPassword should reject a wrong password")
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeRepo())
	base := CreateInput{
		Cedula:   "1-1111-1111",
		FullName: "Dra. Campos",
		Email:    "campos@clinica.cr",
		Role:     "Doctor",
		Password: "secreta1",
	}

	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"sin cedula", func(in *CreateInput) { in.Cedula = " " }},
		{"sin nombre", func(in *CreateInput) { in.FullName = "" }},
		{"sin email", func(in *CreateInput) { in.Email = "" }},
		{"rol inválido", func(in *CreateInput) { in.Role = "Gerente" }},
		{"clave corta", func(in *CreateInput) { in.Password = "12345" }},
	}
	for _, c := range cases {
		in := base
		c.mutate(&in)
		if _, err := svc.Create(context.Background(), in); err != ErrInvalidInput {
			t.Errorf("%s: expected ErrInvalidInput, got %v", c.name, err)
		}
	}
}

func TestUpdate_PasswordRehash(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.Create(context.Background(), CreateInput{
		Cedula:   "1-1111-1111",
		FullName: "Dra. Campos",
		Email:    "campos@clinica.cr",
		Role:     "Doctor",
		Password: "clave-vieja",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	nueva := "clave-nueva"
	upd, err := svc.Update(context.Background(), u.ID, UpdateFields{Password: &nueva})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !svc.CheckPassword(upd, "clave-nueva") {
		t.Error("new password should verify after update")
	}
	if svc.CheckPassword(upd, "clave-vieja") {
		t.Error("old password should no longer verify")
	}

	corta := "123"
	if _, err := svc.Update(context.Background(), u.ID, UpdateFields{Password: &corta}); err != ErrInvalidInput {
		t.Errorf("short password: expected ErrInvalidInput, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.Create(context.Background(), CreateInput{
		Cedula:   "1-1111-1111",
		FullName: "Dra. Campos",
		Email:    "campos@clinica.cr",
		Role:     "Doctor",
		Password: "clave-vieja",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.ResetPassword(context.Background(), u.ID, "clave-nueva"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	got, err := svc.GetByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !svc.CheckPassword(got, "clave-nueva") {
		t.Error("reset password should verify")
	}
}
