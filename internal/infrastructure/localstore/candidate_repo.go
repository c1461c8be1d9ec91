package localstore

import (
	"github.com/jhoicas/recluta-track/internal/domain"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

var _ repository.CandidateRepository = (*CandidateRepo)(nil)

// CandidateRepo implementación del puerto CandidateRepository sobre el store local.
type CandidateRepo struct {
	store *Store
}

// NewCandidateRepository construye el adaptador de persistencia para candidatos.
func NewCandidateRepository(store *Store) *CandidateRepo {
	return &CandidateRepo{store: store}
}

// EnsureSeed siembra la colección vacía solo si la clave está ausente.
func (r *CandidateRepo) EnsureSeed() error {
	_, ok, err := readCollection[*entity.Candidate](r.store, KeyCandidates)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return writeCollection(r.store, KeyCandidates, []*entity.Candidate{})
}

// Add persiste un nuevo candidato al final de la colección.
func (r *CandidateRepo) Add(candidate *entity.Candidate) error {
	candidates, _, err := readCollection[*entity.Candidate](r.store, KeyCandidates)
	if err != nil {
		return err
	}
	return writeCollection(r.store, KeyCandidates, append(candidates, candidate))
}

// List devuelve todos los candidatos en orden de inserción.
func (r *CandidateRepo) List() ([]*entity.Candidate, error) {
	candidates, _, err := readCollection[*entity.Candidate](r.store, KeyCandidates)
	return candidates, err
}

// GetByID búsqueda puntual; devuelve nil si no existe.
func (r *CandidateRepo) GetByID(id string) (*entity.Candidate, error) {
	candidates, _, err := readCollection[*entity.Candidate](r.store, KeyCandidates)
	if err != nil {
		return nil, err
	}
	for _, c := range candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// UpdateStatus reemplaza únicamente el estatus del candidato indicado.
// Si el id no existe devuelve domain.ErrNotFound y la colección queda
// intacta: nunca se crea un registro de forma implícita.
func (r *CandidateRepo) UpdateStatus(id string, status entity.Estatus) (*entity.Candidate, error) {
	candidates, _, err := readCollection[*entity.Candidate](r.store, KeyCandidates)
	if err != nil {
		return nil, err
	}
	var updated *entity.Candidate
	for _, c := range candidates {
		if c.ID == id {
			c.Estatus = status
			updated = c
			break
		}
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	if err := writeCollection(r.store, KeyCandidates, candidates); err != nil {
		return nil, err
	}
	return updated, nil
}
