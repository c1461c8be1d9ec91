package localstore

import (
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación del puerto AssignmentRepository sobre el store local.
type AssignmentRepo struct {
	store *Store
}

// NewAssignmentRepository construye el adaptador para asignaciones empresa↔inplant.
func NewAssignmentRepository(store *Store) *AssignmentRepo {
	return &AssignmentRepo{store: store}
}

// EnsureSeed siembra la colección vacía solo si la clave está ausente.
func (r *AssignmentRepo) EnsureSeed() error {
	_, ok, err := readCollection[*entity.Assignment](r.store, KeyAssignments)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return writeCollection(r.store, KeyAssignments, []*entity.Assignment{})
}

// Add persiste una nueva asignación al final de la colección.
func (r *AssignmentRepo) Add(assignment *entity.Assignment) error {
	assignments, _, err := readCollection[*entity.Assignment](r.store, KeyAssignments)
	if err != nil {
		return err
	}
	return writeCollection(r.store, KeyAssignments, append(assignments, assignment))
}

// List devuelve todas las asignaciones en orden de inserción.
func (r *AssignmentRepo) List() ([]*entity.Assignment, error) {
	assignments, _, err := readCollection[*entity.Assignment](r.store, KeyAssignments)
	return assignments, err
}
