package patients

import "context"

// UpdateInput es un PATCH real: nil = no tocar. OwnerName queda fuera,
// es un campo derivado del join.
type UpdateInput struct {
	OwnerID   *int64
	Name      *string
	Species   *string
	Breed     *string
	AgeMonths *int
	WeightKg  *float64
}

type Repository interface {
	GetAll(ctx context.Context) ([]Patient, error)
	GetByID(ctx context.Context, id int64) (Patient, error)
	Create(ctx context.Context, p Patient) (Patient, error)
	Update(ctx context.Context, id int64, in UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
