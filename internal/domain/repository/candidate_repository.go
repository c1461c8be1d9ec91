package repository

import "github.com/jhoicas/recluta-track/internal/domain/entity"

// CandidateRepository define el puerto de persistencia para candidatos.
type CandidateRepository interface {
	EnsureSeed() error
	Add(candidate *entity.Candidate) error
	// List devuelve todos los candidatos en orden de inserción. El núcleo
	// no filtra por rol: el contrato observado entrega la lista global
	// también a reclutadores e inplants.
	List() ([]*entity.Candidate, error)
	GetByID(id string) (*entity.Candidate, error)
	// UpdateStatus reemplaza únicamente el campo estatus del candidato.
	// Devuelve domain.ErrNotFound si el id no existe; nunca hace upsert.
	UpdateStatus(id string, status entity.Estatus) (*entity.Candidate, error)
}
