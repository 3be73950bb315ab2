package owners

import "context"

// UpdateInput es un PATCH real: nil = no tocar el campo.
type UpdateInput struct {
	Cedula   *string
	FullName *string
	Phone    *string
	Email    *string
	Address  *string
}

type Repository interface {
	GetAll(ctx context.Context) ([]Owner, error)
	GetByID(ctx context.Context, id int64) (Owner, error)
	Create(ctx context.Context, o Owner) (Owner, error)
	Update(ctx context.Context, id int64, in UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
