package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/domain"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

// CompanyUseCase altas y consultas sobre empresas cliente.
type CompanyUseCase struct {
	companies repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso de empresas.
func NewCompanyUseCase(companies repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies}
}

// Add crea una empresa. Sin chequeo de unicidad por nombre (contrato
// observado: los duplicados se aceptan en silencio).
func (uc *CompanyUseCase) Add(in dto.CreateCompanyRequest) (*entity.Company, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	company := &entity.Company{
		ID:   "comp-" + uuid.NewString(),
		Name: in.Name,
	}
	if err := uc.companies.Add(company); err != nil {
		return nil, err
	}
	return company, nil
}

// List devuelve todas las empresas en orden de inserción.
func (uc *CompanyUseCase) List() ([]*entity.Company, error) {
	return uc.companies.List()
}
