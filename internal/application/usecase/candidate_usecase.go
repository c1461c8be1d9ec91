package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/domain"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

// CandidateUseCase reglas de negocio sobre candidatos: registro, listado
// y transición de estatus.
type CandidateUseCase struct {
	candidates repository.CandidateRepository
	users      repository.UserRepository
}

// NewCandidateUseCase construye el caso de uso con sus puertos.
func NewCandidateUseCase(candidates repository.CandidateRepository, users repository.UserRepository) *CandidateUseCase {
	return &CandidateUseCase{candidates: candidates, users: users}
}

// Add registra un candidato. La atribución (registrantId/registrantRole)
// se toma de la petición o, en su defecto, del actor autenticado; el
// registrante debe existir en el directorio al momento del alta (no se
// re-valida después). Devuelve el registro tal como quedó almacenado.
func (uc *CandidateUseCase) Add(actor *entity.Session, in dto.CreateCandidateRequest) (*entity.Candidate, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}

	registrantID := in.RegistrantID
	if registrantID == "" {
		if actor == nil {
			return nil, domain.ErrNotAuthenticated
		}
		registrantID = actor.UserID
	}
	registrant, err := uc.users.GetByID(registrantID)
	if err != nil {
		return nil, err
	}
	if registrant == nil {
		return nil, fmt.Errorf("%w: registrante %s", domain.ErrUserNotFound, registrantID)
	}

	status := entity.Estatus(in.Estatus)
	if in.Estatus == "" {
		status = entity.EstatusCitado
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Estatus)
	}

	regDate := in.RegistrationDate
	if regDate == "" {
		regDate = time.Now().Format("2006-01-02")
	}

	candidate := &entity.Candidate{
		ID:               "cand-" + uuid.NewString(),
		Nombre:           in.Nombre,
		Telefono:         in.Telefono,
		Municipio:        in.Municipio,
		Escolaridad:      in.Escolaridad,
		Cuenta:           in.Cuenta,
		Vacante:          in.Vacante,
		Estatus:          status,
		RegistrantID:     registrant.ID,
		RegistrantRole:   registrant.Role,
		RegistrationDate: regDate,
	}
	if err := uc.candidates.Add(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// List devuelve los candidatos en orden de inserción. El listado es global
// para todos los roles: las etiquetas "mis candidatos" del tablero no
// filtran por registrante (contrato observado, documentado en DESIGN.md).
// Si buscar no está vacío, filtra por nombre, municipio o cuenta sin
// distinguir mayúsculas ni acentos.
func (uc *CandidateUseCase) List(buscar string) ([]*entity.Candidate, error) {
	candidates, err := uc.candidates.List()
	if err != nil {
		return nil, err
	}
	if buscar == "" {
		return candidates, nil
	}
	needle := foldForSearch(buscar)
	out := make([]*entity.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if foldContains(c.Nombre, needle) || foldContains(c.Municipio, needle) || foldContains(c.Cuenta, needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

// UpdateStatus cambia el estatus de un candidato existente. Solo actores
// con rol inplant pueden hacerlo: la restricción es un invariante del caso
// de uso, no una convención de la capa de presentación.
// Con id inexistente devuelve domain.ErrNotFound sin tocar la colección.
func (uc *CandidateUseCase) UpdateStatus(actor *entity.Session, id string, status string) (*entity.Candidate, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if actor.Role != entity.RoleInplant {
		return nil, fmt.Errorf("%w: solo inplant puede actualizar estatus", domain.ErrForbidden)
	}
	st := entity.Estatus(status)
	if !st.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	return uc.candidates.UpdateStatus(id, st)
}
