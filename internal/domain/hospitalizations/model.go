package hospitalizations

import "time"

// Status define el estado del paciente internado.
// @Enum Estable, Crítico, Observación, Alta
type Status string

const (
	StatusStable      Status = "Estable"
	StatusCritical    Status = "Crítico"
	StatusObservation Status = "Observación"
	StatusDischarged  Status = "Alta"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusStable, StatusCritical, StatusObservation, StatusDischarged:
		return true
	}
	return false
}

// Hospitalization representa una internación: ingreso, estado, plan de
// tratamiento y alertas programadas para el monitoreo.
type Hospitalization struct {
	ID        int64
	PatientID int64
	DoctorID  int64

	EntryDate            time.Time
	Reason               string
	DiagnosisPreliminary string
	AlertMessage         string
	AlertTime            string
	Status               string
	TreatmentPlan        string
	Notes                string
	WeightEntry          *float64
	DischargeDate        *time.Time

	// Denormalizado vía joins (solo lectura)
	PatientName string
	DoctorName  string
}

// Check es un control de signos vitales durante la internación.
type Check struct {
	ID                int64
	HospitalizationID int64
	CheckTime         time.Time
	Temperature       *float64
	HeartRate         *int
	RespiratoryRate   *int
	Observations      string
}
