package localstore

import (
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre el store local.
type CompanyRepo struct {
	store *Store
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(store *Store) *CompanyRepo {
	return &CompanyRepo{store: store}
}

// EnsureSeed siembra las empresas por defecto solo si la colección está ausente.
func (r *CompanyRepo) EnsureSeed(defaults []*entity.Company) error {
	_, ok, err := readCollection[*entity.Company](r.store, KeyCompanies)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return writeCollection(r.store, KeyCompanies, defaults)
}

// Add persiste una nueva empresa. No hay chequeo de unicidad por nombre:
// los duplicados se aceptan en silencio (contrato observado).
func (r *CompanyRepo) Add(company *entity.Company) error {
	companies, _, err := readCollection[*entity.Company](r.store, KeyCompanies)
	if err != nil {
		return err
	}
	return writeCollection(r.store, KeyCompanies, append(companies, company))
}

// List devuelve todas las empresas en orden de inserción.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	companies, _, err := readCollection[*entity.Company](r.store, KeyCompanies)
	return companies, err
}

// GetByName busca por nombre exacto; devuelve el primero o nil.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	companies, _, err := readCollection[*entity.Company](r.store, KeyCompanies)
	if err != nil {
		return nil, err
	}
	for _, c := range companies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
