package usecase

import (
	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

// DashboardUseCase resume el estado del sistema para los tableros por rol.
type DashboardUseCase struct {
	candidates  repository.CandidateRepository
	companies   repository.CompanyRepository
	users       repository.UserRepository
	assignments repository.AssignmentRepository
}

// NewDashboardUseCase construye el caso de uso del tablero.
func NewDashboardUseCase(
	candidates repository.CandidateRepository,
	companies repository.CompanyRepository,
	users repository.UserRepository,
	assignments repository.AssignmentRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		candidates:  candidates,
		companies:   companies,
		users:       users,
		assignments: assignments,
	}
}

// Summary totales globales y conteo por estatus. Como el listado de
// candidatos, el resumen es global para todos los roles.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	candidates, err := uc.candidates.List()
	if err != nil {
		return nil, err
	}
	companies, err := uc.companies.List()
	if err != nil {
		return nil, err
	}
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	assignments, err := uc.assignments.List()
	if err != nil {
		return nil, err
	}

	byEstatus := make(map[string]int, len(entity.Estatuses()))
	for _, e := range entity.Estatuses() {
		byEstatus[string(e)] = 0
	}
	for _, c := range candidates {
		byEstatus[string(c.Estatus)]++
	}
	return &dto.DashboardResponse{
		TotalCandidates:  len(candidates),
		TotalCompanies:   len(companies),
		TotalUsers:       len(users),
		TotalAssignments: len(assignments),
		ByEstatus:        byEstatus,
	}, nil
}
