package patients

// Species define las especies más comunes en la clínica.
// @Enum Perro, Gato, Ave, Otro
type Species string

const (
	SpeciesDog   Species = "Perro"
	SpeciesCat   Species = "Gato"
	SpeciesBird  Species = "Ave"
	SpeciesOther Species = "Otro"
)

// Patient representa una mascota registrada como paciente de la clínica.
type Patient struct {
	ID      int64
	OwnerID int64

	Name      string
	Species   string
	Breed     string
	AgeMonths int
	WeightKg  float64

	// Denormalizado vía join (solo lectura)
	OwnerName string
}
