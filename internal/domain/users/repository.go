package users

import "context"

// UpdateInput es un PATCH real: nil = no tocar.
type UpdateInput struct {
	Cedula       *string
	FullName     *string
	Email        *string
	Phone        *string
	Role         *string
	PasswordHash *string
	Schedule     *string
}

type Repository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, id int64, in UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
