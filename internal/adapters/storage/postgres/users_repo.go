package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-console/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, cedula, full_name, email, phone, role, password_hash, created_at, schedule`

func scanUser(row interface{ Scan(...any) error }) (users.User, error) {
	var u users.User
	err := row.Scan(&u.ID, &u.Cedula, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.Schedule)
	return u, err
}

func (r *UsersRepo) GetAll(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY full_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(email) = $1
	`, email)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (cedula, full_name, email, phone, role, password_hash, created_at, schedule)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, u.Cedula, u.FullName, u.Email, u.Phone, u.Role, u.PasswordHash, u.CreatedAt, u.Schedule).Scan(&u.ID)
	if err != nil {
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, id int64, in users.UpdateInput) error {
	var b setBuilder
	if in.Cedula != nil {
		b.add("cedula", *in.Cedula)
	}
	if in.FullName != nil {
		b.add("full_name", *in.FullName)
	}
	if in.Email != nil {
		b.add("email", *in.Email)
	}
	if in.Phone != nil {
		b.add("phone", *in.Phone)
	}
	if in.Role != nil {
		b.add("role", *in.Role)
	}
	if in.PasswordHash != nil {
		b.add("password_hash", *in.PasswordHash)
	}
	if in.Schedule != nil {
		b.add("schedule", *in.Schedule)
	}
	if b.empty() {
		return nil
	}

	q, args := b.query("users", id)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return users.ErrNotFound
	}
	return nil
}
