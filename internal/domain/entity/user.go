package entity

// Role rol cerrado del sistema. Añadir o quitar un rol es un cambio
// verificado en compilación: todo switch sobre Role debe ser exhaustivo.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
	RoleInplant   Role = "inplant"
)

// Valid reporta si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRecruiter, RoleInplant:
		return true
	}
	return false
}

// Home devuelve la ruta de aterrizaje del rol tras el login.
// Cualquier rol fuera del conjunto cae en "/".
func (r Role) Home() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleRecruiter:
		return "/recruiter"
	case RoleInplant:
		return "/inplant"
	default:
		return "/"
	}
}

// User representa un usuario del directorio (admin, reclutador o inplant).
// La clave JSON se mantiene como "password" por compatibilidad con stores
// ya existentes, pero el valor almacenado es siempre un hash bcrypt.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         Role   `json:"role"`
	Name         string `json:"name"`
}
