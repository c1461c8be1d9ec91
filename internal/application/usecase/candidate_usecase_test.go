package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/application/usecase"
	"github.com/jhoicas/recluta-track/internal/domain"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
)

func adminSession() *entity.Session {
	return &entity.Session{UserID: "1", Email: "admin@example.com", Role: entity.RoleAdmin, Name: "Admin User"}
}

func inplantSession() *entity.Session {
	return &entity.Session{UserID: "3", Email: "inplant@example.com", Role: entity.RoleInplant, Name: "Inplant User"}
}

// newCandidateUC arma el caso de uso sobre un store sembrado.
func newCandidateUC(t *testing.T) (*usecase.CandidateUseCase, *repos) {
	t.Helper()
	r := newRepos(t)
	require.NoError(t, newBootstrap(r).Initialize())
	return usecase.NewCandidateUseCase(r.candidates, r.users), r
}

func anaPerez() dto.CreateCandidateRequest {
	return dto.CreateCandidateRequest{
		Nombre: "Ana Pérez", Telefono: "8112345678", Municipio: "Monterrey",
		Escolaridad: "Licenciatura", Cuenta: "Tech Solutions Inc.",
		Vacante: "Analista", Estatus: "Citado", RegistrantID: "1",
	}
}

func TestAdd_CandidatoCompleto(t *testing.T) {
	uc, _ := newCandidateUC(t)

	c, err := uc.Add(adminSession(), anaPerez())
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.NotEmpty(t, c.RegistrationDate, "la fecha de registro se estampa al crear")
	assert.Equal(t, entity.EstatusCitado, c.Estatus)
	assert.Equal(t, "1", c.RegistrantID)
	assert.Equal(t, entity.RoleAdmin, c.RegistrantRole, "el rol del registrante se copia del directorio")

	// Escenario del flujo completo: el listado contiene exactamente el nuevo registro
	list, err := uc.List("")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c, list[0])
}

func TestAdd_AtribucionDesdeLaSesion(t *testing.T) {
	uc, _ := newCandidateUC(t)

	in := anaPerez()
	in.RegistrantID = "" // sin registrante explícito: se toma del actor
	c, err := uc.Add(inplantSession(), in)
	require.NoError(t, err)
	assert.Equal(t, "3", c.RegistrantID)
	assert.Equal(t, entity.RoleInplant, c.RegistrantRole)
}

func TestAdd_RegistranteInexistente(t *testing.T) {
	uc, _ := newCandidateUC(t)

	in := anaPerez()
	in.RegistrantID = "user-fantasma"
	_, err := uc.Add(adminSession(), in)
	assert.ErrorIs(t, err, domain.ErrUserNotFound,
		"el registrante debe existir en el directorio al momento del alta")

	list, _ := uc.List("")
	assert.Empty(t, list, "nada se persiste cuando el alta falla")
}

func TestAdd_EstatusInvalido(t *testing.T) {
	uc, _ := newCandidateUC(t)

	in := anaPerez()
	in.Estatus = "Pendiente"
	_, err := uc.Add(adminSession(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestAdd_EstatusVacioDefaultCitado(t *testing.T) {
	uc, _ := newCandidateUC(t)

	in := anaPerez()
	in.Estatus = ""
	c, err := uc.Add(adminSession(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.EstatusCitado, c.Estatus)
}

func TestAdd_FechaExplicitaSeConserva(t *testing.T) {
	uc, _ := newCandidateUC(t)

	in := anaPerez()
	in.RegistrationDate = "2026-01-15"
	c, err := uc.Add(adminSession(), in)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15", c.RegistrationDate)
}

func TestUpdateStatus_SoloInplant(t *testing.T) {
	uc, _ := newCandidateUC(t)
	c, err := uc.Add(adminSession(), anaPerez())
	require.NoError(t, err)

	// admin y recruiter quedan bloqueados: el invariante ya no es solo de UI
	_, err = uc.UpdateStatus(adminSession(), c.ID, "Contratado")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	recruiter := &entity.Session{UserID: "2", Role: entity.RoleRecruiter}
	_, err = uc.UpdateStatus(recruiter, c.ID, "Contratado")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := uc.UpdateStatus(inplantSession(), c.ID, "Contratado")
	require.NoError(t, err)
	assert.Equal(t, entity.EstatusContratado, updated.Estatus)

	list, _ := uc.List("")
	require.Len(t, list, 1)
	assert.Equal(t, entity.EstatusContratado, list[0].Estatus)
}

func TestUpdateStatus_SinSesion(t *testing.T) {
	uc, _ := newCandidateUC(t)
	_, err := uc.UpdateStatus(nil, "cand-1", "Contratado")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestUpdateStatus_IdInexistente(t *testing.T) {
	uc, _ := newCandidateUC(t)
	_, err := uc.UpdateStatus(inplantSession(), "cand-no-existe", "Contratado")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_EstatusInvalido(t *testing.T) {
	uc, _ := newCandidateUC(t)
	c, err := uc.Add(adminSession(), anaPerez())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(inplantSession(), c.ID, "Contratadísimo")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestList_BusquedaIgnoraAcentosYMayusculas(t *testing.T) {
	uc, _ := newCandidateUC(t)
	_, err := uc.Add(adminSession(), anaPerez())
	require.NoError(t, err)

	in := anaPerez()
	in.Nombre = "José García"
	in.Municipio = "San Nicolás"
	_, err = uc.Add(adminSession(), in)
	require.NoError(t, err)

	// "perez" encuentra a "Pérez"
	found, err := uc.List("perez")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ana Pérez", found[0].Nombre)

	// búsqueda por municipio, con acento en la consulta y sin él en el dato
	found, err = uc.List("nicolas")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "José García", found[0].Nombre)

	// sin coincidencias
	found, err = uc.List("guadalajara")
	require.NoError(t, err)
	assert.Empty(t, found)

	// término vacío devuelve todo en orden de inserción
	all, err := uc.List("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana Pérez", all[0].Nombre)
}
