package users

// Role define los roles del personal de la clínica.
// @Enum Doctor, Asistente, Administrativo
type Role string

const (
	RoleDoctor    Role = "Doctor"
	RoleAssistant Role = "Asistente"
	RoleAdmin     Role = "Administrativo"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleDoctor, RoleAssistant, RoleAdmin:
		return true
	}
	return false
}

// User representa una cuenta del personal (staff) de la clínica.
type User struct {
	ID           int64
	Cedula       string
	FullName     string
	Email        string
	Phone        string
	Role         string
	PasswordHash string
	CreatedAt    int64  // epoch ms
	Schedule     string // JSON con el horario laboral, editado desde la consola
}
