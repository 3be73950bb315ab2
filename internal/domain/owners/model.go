package owners

// Owner representa al propietario de uno o más pacientes.
// La cédula es el identificador personal (Costa Rica).
type Owner struct {
	ID       int64
	Cedula   string
	FullName string
	Phone    string
	Email    string
	Address  string
}
