package repository

import "github.com/jhoicas/recluta-track/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	EnsureSeed(defaults []*entity.Company) error
	Add(company *entity.Company) error
	List() ([]*entity.Company, error)
	// GetByName busca por nombre exacto; devuelve nil si no existe.
	// Los duplicados se aceptan en silencio, así que devuelve el primero.
	GetByName(name string) (*entity.Company, error)
}

// AssignmentRepository define el puerto para las asignaciones
// empresa↔inplant. Sin update ni delete: el registro es de solo adición.
type AssignmentRepository interface {
	EnsureSeed() error
	Add(assignment *entity.Assignment) error
	List() ([]*entity.Assignment, error)
}
