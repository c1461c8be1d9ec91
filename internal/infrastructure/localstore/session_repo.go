package localstore

import (
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo persiste el token de sesión firmado bajo la clave authUser.
type SessionRepo struct {
	store *Store
}

// NewSessionRepository construye el adaptador de persistencia de sesión.
func NewSessionRepository(store *Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// Save guarda el token de sesión (sobrescribe cualquier sesión previa).
func (r *SessionRepo) Save(token string) error {
	return r.store.Put(KeyAuthUser, []byte(token))
}

// Load devuelve el token persistido o "" si no hay sesión guardada.
func (r *SessionRepo) Load() (string, error) {
	raw, ok, err := r.store.Get(KeyAuthUser)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return string(raw), nil
}

// Clear elimina la sesión persistida. Idempotente.
func (r *SessionRepo) Clear() error {
	return r.store.Delete(KeyAuthUser)
}
