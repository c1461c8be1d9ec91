package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/recluta-track/internal/application/usecase"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/infrastructure/localstore"
)

type repos struct {
	store       *localstore.Store
	users       *localstore.UserRepo
	companies   *localstore.CompanyRepo
	candidates  *localstore.CandidateRepo
	assignments *localstore.AssignmentRepo
}

func newRepos(t *testing.T) *repos {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return &repos{
		store:       store,
		users:       localstore.NewUserRepository(store),
		companies:   localstore.NewCompanyRepository(store),
		candidates:  localstore.NewCandidateRepository(store),
		assignments: localstore.NewAssignmentRepository(store),
	}
}

func newBootstrap(r *repos) *usecase.BootstrapUseCase {
	return usecase.NewBootstrapUseCase(r.users, r.companies, r.candidates, r.assignments, bcrypt.MinCost)
}

func TestInitialize_SiembraLasCuatroColecciones(t *testing.T) {
	r := newRepos(t)
	require.NoError(t, newBootstrap(r).Initialize())

	users, err := r.users.List()
	require.NoError(t, err)
	require.Len(t, users, 3, "una cuenta por rol")
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
	assert.Equal(t, entity.RoleRecruiter, users[1].Role)
	assert.Equal(t, entity.RoleInplant, users[2].Role)
	for _, u := range users {
		err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password"))
		assert.NoError(t, err, "la contraseña sembrada se almacena como hash bcrypt verificable")
	}

	companies, err := r.companies.List()
	require.NoError(t, err)
	require.Len(t, companies, 3)
	assert.Equal(t, "Tech Solutions Inc.", companies[0].Name)

	candidates, err := r.candidates.List()
	require.NoError(t, err)
	assert.Empty(t, candidates)

	assignments, err := r.assignments.List()
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestInitialize_DosVecesEquivaleAUna(t *testing.T) {
	r := newRepos(t)
	uc := newBootstrap(r)
	require.NoError(t, uc.Initialize())

	// Mutar entre siembras para verificar que nada se sobrescribe
	require.NoError(t, r.candidates.Add(&entity.Candidate{ID: "cand-1", Nombre: "Ana", Estatus: entity.EstatusCitado}))

	require.NoError(t, uc.Initialize())

	users, _ := r.users.List()
	assert.Len(t, users, 3)
	candidates, _ := r.candidates.List()
	assert.Len(t, candidates, 1, "la re-siembra no debe borrar datos existentes")
}

func TestInitialize_CadaColeccionSeSiembraIndependiente(t *testing.T) {
	r := newRepos(t)
	uc := newBootstrap(r)
	require.NoError(t, uc.Initialize())

	// Añadir una empresa y borrar solo la clave de candidatos
	require.NoError(t, r.companies.Add(&entity.Company{ID: "comp-x", Name: "Nueva SA"}))
	require.NoError(t, r.store.Delete(localstore.KeyCandidates))

	require.NoError(t, uc.Initialize())

	candidates, _ := r.candidates.List()
	assert.Empty(t, candidates, "solo la colección faltante se re-siembra")
	companies, _ := r.companies.List()
	assert.Len(t, companies, 4, "las colecciones presentes quedan intactas")
}
