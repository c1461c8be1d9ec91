package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son recuperables
// por el llamador: ninguna operación del núcleo termina el proceso y las
// colecciones quedan intactas cuando se devuelve un error.
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrNotAuthenticated   = errors.New("no hay sesión activa")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrCompanyNotFound    = errors.New("empresa no encontrada")
	ErrInplantNotFound    = errors.New("inplant no encontrado")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrInvalidStatus      = errors.New("estatus inválido")
	ErrInvalidInput       = errors.New("entrada inválida")
)
