package entity

// Session sesión activa del cliente: a lo sumo una por proceso. Nunca
// transporta la contraseña; el directorio de usuarios es la fuente de
// verdad y la sesión persistida actúa solo como caché entre arranques.
type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
}
