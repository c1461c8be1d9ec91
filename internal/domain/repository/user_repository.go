package repository

import "github.com/jhoicas/recluta-track/internal/domain/entity"

// UserRepository define el puerto de persistencia para el directorio de
// usuarios (DIP). La implementación vive en infrastructure.
type UserRepository interface {
	// EnsureSeed escribe los usuarios por defecto solo si la colección
	// aún no existe en el store. Idempotente. El proveedor es perezoso
	// porque construir los defaults hashea contraseñas con bcrypt y eso
	// solo debe pagarse en la primera ejecución.
	EnsureSeed(defaults func() ([]*entity.User, error)) error
	Add(user *entity.User) error
	List() ([]*entity.User, error)
	GetByID(id string) (*entity.User, error)
	// FindByEmail busca por igualdad exacta de email (sensible a
	// mayúsculas, contrato observado). Devuelve nil si no existe.
	FindByEmail(email string) (*entity.User, error)
	// FindByNameAndRole busca el primer usuario con ese nombre y rol.
	// Devuelve nil si no existe.
	FindByNameAndRole(name string, role entity.Role) (*entity.User, error)
}
