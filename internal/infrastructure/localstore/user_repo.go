package localstore

import (
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el store local.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// EnsureSeed siembra los usuarios por defecto solo si la colección está
// ausente (o corrupta, que equivale a primera ejecución).
func (r *UserRepo) EnsureSeed(defaults func() ([]*entity.User, error)) error {
	_, ok, err := readCollection[*entity.User](r.store, KeyUsers)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	users, err := defaults()
	if err != nil {
		return err
	}
	return writeCollection(r.store, KeyUsers, users)
}

// Add persiste un nuevo usuario al final de la colección.
func (r *UserRepo) Add(user *entity.User) error {
	users, _, err := readCollection[*entity.User](r.store, KeyUsers)
	if err != nil {
		return err
	}
	return writeCollection(r.store, KeyUsers, append(users, user))
}

// List devuelve todos los usuarios en orden de inserción.
func (r *UserRepo) List() ([]*entity.User, error) {
	users, _, err := readCollection[*entity.User](r.store, KeyUsers)
	return users, err
}

// GetByID búsqueda puntual; devuelve nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	users, _, err := readCollection[*entity.User](r.store, KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// FindByEmail busca por igualdad exacta de email (sensible a mayúsculas).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	users, _, err := readCollection[*entity.User](r.store, KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// FindByNameAndRole devuelve el primer usuario con ese nombre y rol.
func (r *UserRepo) FindByNameAndRole(name string, role entity.Role) (*entity.User, error) {
	users, _, err := readCollection[*entity.User](r.store, KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Name == name && u.Role == role {
			return u, nil
		}
	}
	return nil, nil
}
