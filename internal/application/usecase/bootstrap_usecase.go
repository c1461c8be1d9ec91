package usecase

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

// Contraseña por defecto de las cuentas sembradas en la primera ejecución.
const seedPassword = "password"

// BootstrapUseCase siembra las cuatro colecciones en la primera ejecución.
// Cada colección se siembra de forma independiente y solo cuando su propia
// clave falta en el store; ejecutar Initialize dos veces equivale a una.
type BootstrapUseCase struct {
	users       repository.UserRepository
	companies   repository.CompanyRepository
	candidates  repository.CandidateRepository
	assignments repository.AssignmentRepository
	bcryptCost  int
}

// NewBootstrapUseCase construye el caso de uso de siembra inicial.
func NewBootstrapUseCase(
	users repository.UserRepository,
	companies repository.CompanyRepository,
	candidates repository.CandidateRepository,
	assignments repository.AssignmentRepository,
	bcryptCost int,
) *BootstrapUseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &BootstrapUseCase{
		users:       users,
		companies:   companies,
		candidates:  candidates,
		assignments: assignments,
		bcryptCost:  bcryptCost,
	}
}

// Initialize asegura la siembra de cada colección. No sobrescribe datos
// existentes: si una clave ya está presente, esa colección se deja tal cual.
func (uc *BootstrapUseCase) Initialize() error {
	if err := uc.users.EnsureSeed(uc.defaultUsers); err != nil {
		return fmt.Errorf("sembrar usuarios: %w", err)
	}
	if err := uc.companies.EnsureSeed(defaultCompanies()); err != nil {
		return fmt.Errorf("sembrar empresas: %w", err)
	}
	if err := uc.candidates.EnsureSeed(); err != nil {
		return fmt.Errorf("sembrar candidatos: %w", err)
	}
	if err := uc.assignments.EnsureSeed(); err != nil {
		return fmt.Errorf("sembrar asignaciones: %w", err)
	}
	return nil
}

// defaultUsers construye las tres cuentas por defecto, una por rol. Se
// invoca solo cuando la colección users está ausente.
func (uc *BootstrapUseCase) defaultUsers() ([]*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña por defecto: %w", err)
	}
	return []*entity.User{
		{ID: "1", Email: "admin@example.com", PasswordHash: string(hash), Role: entity.RoleAdmin, Name: "Admin User"},
		{ID: "2", Email: "recruiter@example.com", PasswordHash: string(hash), Role: entity.RoleRecruiter, Name: "Recruiter User"},
		{ID: "3", Email: "inplant@example.com", PasswordHash: string(hash), Role: entity.RoleInplant, Name: "Inplant User"},
	}, nil
}

func defaultCompanies() []*entity.Company {
	return []*entity.Company{
		{ID: "comp1", Name: "Tech Solutions Inc."},
		{ID: "comp2", Name: "Innovatech Ltd."},
		{ID: "comp3", Name: "Global Corp."},
	}
}
