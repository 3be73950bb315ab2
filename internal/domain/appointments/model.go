package appointments

import "time"

// Type define las categorías de cita. Las duraciones por defecto de cada tipo
// viven en la configuración compartida de la agenda.
// @Enum Consulta, Vacuna, Cirugía, Examen
type Type string

const (
	TypeConsultation Type = "Consulta"
	TypeVaccine      Type = "Vacuna"
	TypeSurgery      Type = "Cirugía"
	TypeExam         Type = "Examen"
)

// Status define el ciclo de vida de una cita.
// @Enum Programada, Completada, Cancelada
type Status string

const (
	StatusScheduled Status = "Programada"
	StatusCompleted Status = "Completada"
	StatusCancelled Status = "Cancelada"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment representa un turno agendado.
type Appointment struct {
	ID          int64
	PatientID   int64
	DoctorID    int64
	AssistantID *int64

	Type            string
	StartTime       time.Time
	DurationMinutes int
	Status          string

	// Denormalizado vía joins (solo lectura)
	PatientName   string
	OwnerName     string
	DoctorName    string
	AssistantName string
}
