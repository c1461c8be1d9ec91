package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/application/usecase"
	"github.com/jhoicas/recluta-track/internal/domain"
)

func newAssignmentUC(t *testing.T) (*usecase.AssignmentUseCase, *repos) {
	t.Helper()
	r := newRepos(t)
	require.NoError(t, newBootstrap(r).Initialize())
	return usecase.NewAssignmentUseCase(r.assignments, r.companies, r.users), r
}

func TestAssignmentAdd_ResuelvePorNombre(t *testing.T) {
	uc, _ := newAssignmentUC(t)

	as, err := uc.Add(dto.CreateAssignmentRequest{
		CompanyName: "Tech Solutions Inc.",
		InplantName: "Inplant User",
	})
	require.NoError(t, err)

	// Registro denormalizado: ids y nombres vigentes al crearse
	assert.Equal(t, "comp1", as.CompanyID)
	assert.Equal(t, "Tech Solutions Inc.", as.CompanyName)
	assert.Equal(t, "3", as.InplantID)
	assert.Equal(t, "Inplant User", as.InplantName)
	assert.NotEmpty(t, as.ID)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestAssignmentAdd_EmpresaInexistente(t *testing.T) {
	uc, _ := newAssignmentUC(t)

	_, err := uc.Add(dto.CreateAssignmentRequest{
		CompanyName: "ACME Inexistente",
		InplantName: "Inplant User",
	})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	list, _ := uc.List()
	assert.Empty(t, list, "nada se persiste si falla la resolución")
}

func TestAssignmentAdd_InplantInexistente(t *testing.T) {
	uc, _ := newAssignmentUC(t)

	_, err := uc.Add(dto.CreateAssignmentRequest{
		CompanyName: "Tech Solutions Inc.",
		InplantName: "Nadie",
	})
	assert.ErrorIs(t, err, domain.ErrInplantNotFound)
}

func TestAssignmentAdd_SoloResuelveUsuariosConRolInplant(t *testing.T) {
	uc, _ := newAssignmentUC(t)

	// "Admin User" existe pero no es inplant
	_, err := uc.Add(dto.CreateAssignmentRequest{
		CompanyName: "Tech Solutions Inc.",
		InplantName: "Admin User",
	})
	assert.ErrorIs(t, err, domain.ErrInplantNotFound)
}
