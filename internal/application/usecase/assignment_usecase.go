package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/domain"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

// AssignmentUseCase asigna empresas a usuarios inplant.
type AssignmentUseCase struct {
	assignments repository.AssignmentRepository
	companies   repository.CompanyRepository
	users       repository.UserRepository
}

// NewAssignmentUseCase construye el caso de uso de asignaciones.
func NewAssignmentUseCase(
	assignments repository.AssignmentRepository,
	companies repository.CompanyRepository,
	users repository.UserRepository,
) *AssignmentUseCase {
	return &AssignmentUseCase{assignments: assignments, companies: companies, users: users}
}

// Add resuelve empresa e inplant por nombre (así los captura el
// formulario) y crea el registro denormalizado. Falla sin persistir nada
// si cualquiera de los dos no existe. No hay integridad referencial hacia
// adelante: renombres posteriores no se propagan al registro.
func (uc *AssignmentUseCase) Add(in dto.CreateAssignmentRequest) (*entity.Assignment, error) {
	company, err := uc.companies.GetByName(in.CompanyName)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrCompanyNotFound, in.CompanyName)
	}
	inplant, err := uc.users.FindByNameAndRole(in.InplantName, entity.RoleInplant)
	if err != nil {
		return nil, err
	}
	if inplant == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInplantNotFound, in.InplantName)
	}

	assignment := &entity.Assignment{
		ID:          "assign-" + uuid.NewString(),
		CompanyID:   company.ID,
		CompanyName: company.Name,
		InplantID:   inplant.ID,
		InplantName: inplant.Name,
	}
	if err := uc.assignments.Add(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// List devuelve todas las asignaciones en orden de inserción.
func (uc *AssignmentUseCase) List() ([]*entity.Assignment, error) {
	return uc.assignments.List()
}
