package hospitalizations

import (
	"context"
	"time"
)

// UpdateInput es un PATCH real: nil = no tocar.
type UpdateInput struct {
	PatientID            *int64
	DoctorID             *int64
	EntryDate            *time.Time
	Reason               *string
	DiagnosisPreliminary *string
	AlertMessage         *string
	AlertTime            *string
	Status               *string
	TreatmentPlan        *string
	Notes                *string
	WeightEntry          *float64
	DischargeDate        *time.Time
}

type Repository interface {
	GetAll(ctx context.Context) ([]Hospitalization, error)
	GetByID(ctx context.Context, id int64) (Hospitalization, error)
	Create(ctx context.Context, h Hospitalization) (Hospitalization, error)
	Update(ctx context.Context, id int64, in UpdateInput) error
	Delete(ctx context.Context, id int64) error

	ListChecks(ctx context.Context, hospitalizationID int64) ([]Check, error)
	AddCheck(ctx context.Context, c Check) (Check, error)
}
