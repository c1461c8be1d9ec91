// Package guard decide el acceso a rutas protegidas a partir de la sesión
// activa y los roles permitidos. Mientras la restauración de sesión está
// pendiente no se redirige: se muestra un estado de carga neutro.
package guard

import (
	"github.com/jhoicas/recluta-track/internal/application/auth"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
)

// Rutas de redirección del guard.
const (
	LoginPath     = auth.LoginPath
	ForbiddenPath = "/unauthorized"
)

// Decision resultado de evaluar el acceso a una ruta protegida.
type Decision int

const (
	// Pending la restauración de sesión no ha terminado: renderizar
	// estado de carga, nunca redirigir prematuramente.
	Pending Decision = iota
	// Allow acceso concedido.
	Allow
	// RedirectLogin sin autenticar: navegar a LoginPath.
	RedirectLogin
	// RedirectForbidden autenticado pero sin el rol requerido: navegar a
	// ForbiddenPath.
	RedirectForbidden
)

// RedirectPath devuelve la ruta de navegación asociada a la decisión, o
// "" cuando no hay redirección.
func (d Decision) RedirectPath() string {
	switch d {
	case RedirectLogin:
		return LoginPath
	case RedirectForbidden:
		return ForbiddenPath
	default:
		return ""
	}
}

// Evaluate aplica la política del guard: pendiente mientras no se haya
// restaurado la sesión; login si no hay sesión; forbidden si el rol no
// está permitido; acceso en otro caso. Una lista vacía de roles significa
// ruta pública-dentro-de-auth.
func Evaluate(restored bool, session *entity.Session, allowedRoles ...entity.Role) Decision {
	if !restored {
		return Pending
	}
	if session == nil {
		return RedirectLogin
	}
	if !auth.IsAuthorized(session, allowedRoles...) {
		return RedirectForbidden
	}
	return Allow
}
