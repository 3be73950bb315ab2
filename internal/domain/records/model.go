package records

// MedicalRecord representa una entrada del expediente clínico de un paciente,
// con un adjunto opcional subido al almacenamiento de objetos.
type MedicalRecord struct {
	ID        int64
	PatientID int64
	DoctorID  int64

	VisitDate    int64 // epoch ms
	Observations string
	Diagnosis    string
	Treatment    string
	FileURL      string

	// Denormalizado vía joins (solo lectura)
	PatientName string
	DoctorName  string
}
