package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-console/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) GetAll(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cedula, full_name, phone, email, address
		FROM owners
		ORDER BY full_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.Cedula, &o.FullName, &o.Phone, &o.Email, &o.Address); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, cedula, full_name, phone, email, address
		FROM owners
		WHERE id = $1
	`, id)

	var o owners.Owner
	if err := row.Scan(&o.ID, &o.Cedula, &o.FullName, &o.Phone, &o.Email, &o.Address); err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO owners (cedula, full_name, phone, email, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, o.Cedula, o.FullName, o.Phone, o.Email, o.Address).Scan(&o.ID)
	if err != nil {
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) Update(ctx context.Context, id int64, in owners.UpdateInput) error {
	var b setBuilder
	if in.Cedula != nil {
		b.add("cedula", *in.Cedula)
	}
	if in.FullName != nil {
		b.add("full_name", *in.FullName)
	}
	if in.Phone != nil {
		b.add("phone", *in.Phone)
	}
	if in.Email != nil {
		b.add("email", *in.Email)
	}
	if in.Address != nil {
		b.add("address", *in.Address)
	}
	if b.empty() {
		return nil
	}

	q, args := b.query("owners", id)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return owners.ErrNotFound
	}
	return nil
}
