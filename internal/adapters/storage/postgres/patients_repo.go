package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-console/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

func (r *PatientsRepo) GetAll(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			p.id, p.owner_id, p.name, p.species, p.breed, p.age_months, p.weight_kg,
			COALESCE(o.full_name, '') AS owner_name
		FROM patients p
		LEFT JOIN owners o ON p.owner_id = o.id
		ORDER BY p.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		var p patients.Patient
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Breed, &p.AgeMonths, &p.WeightKg, &p.OwnerName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PatientsRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			p.id, p.owner_id, p.name, p.species, p.breed, p.age_months, p.weight_kg,
			COALESCE(o.full_name, '') AS owner_name
		FROM patients p
		LEFT JOIN owners o ON p.owner_id = o.id
		WHERE p.id = $1
	`, id)

	var p patients.Patient
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Breed, &p.AgeMonths, &p.WeightKg, &p.OwnerName); err != nil {
		if err == sql.ErrNoRows {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO patients (owner_id, name, species, breed, age_months, weight_kg)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, p.OwnerID, p.Name, p.Species, p.Breed, p.AgeMonths, p.WeightKg).Scan(&p.ID)
	if err != nil {
		return patients.Patient{}, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *PatientsRepo) Update(ctx context.Context, id int64, in patients.UpdateInput) error {
	var b setBuilder
	if in.OwnerID != nil {
		b.add("owner_id", *in.OwnerID)
	}
	if in.Name != nil {
		b.add("name", *in.Name)
	}
	if in.Species != nil {
		b.add("species", *in.Species)
	}
	if in.Breed != nil {
		b.add("breed", *in.Breed)
	}
	if in.AgeMonths != nil {
		b.add("age_months", *in.AgeMonths)
	}
	if in.WeightKg != nil {
		b.add("weight_kg", *in.WeightKg)
	}
	if b.empty() {
		return nil
	}

	q, args := b.query("patients", id)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

func (r *PatientsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return patients.ErrNotFound
	}
	return nil
}
