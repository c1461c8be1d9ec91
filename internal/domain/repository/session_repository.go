package repository

// SessionRepository persiste el token de sesión firmado bajo la clave
// authUser del store. La sesión persistida es caché, no fuente de verdad.
type SessionRepository interface {
	Save(token string) error
	// Load devuelve el token persistido o "" si no hay sesión guardada.
	Load() (string, error)
	// Clear elimina la sesión persistida. No es error si no existe.
	Clear() error
}
