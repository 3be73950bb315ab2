package records

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]MedicalRecord, error)
	Create(ctx context.Context, rec MedicalRecord) (MedicalRecord, error)
	Delete(ctx context.Context, id int64) error
}
