package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/application/usecase"
	"github.com/jhoicas/recluta-track/internal/domain"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
)

func newUserUC(t *testing.T) (*usecase.UserUseCase, *repos) {
	t.Helper()
	r := newRepos(t)
	require.NoError(t, newBootstrap(r).Initialize())
	return usecase.NewUserUseCase(r.users, bcrypt.MinCost), r
}

func TestUserAdd_HasheaPassword(t *testing.T) {
	uc, _ := newUserUC(t)

	u, err := uc.Add(dto.CreateUserRequest{
		Email: "nuevo@example.com", Password: "secreta123", Name: "Nuevo Reclutador", Role: "recruiter",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleRecruiter, u.Role)
	assert.NotEqual(t, "secreta123", u.PasswordHash, "la contraseña nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreta123")))
}

func TestUserAdd_RolInvalido(t *testing.T) {
	uc, _ := newUserUC(t)
	_, err := uc.Add(dto.CreateUserRequest{Email: "x@y.z", Password: "p", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestUserAdd_EmailDuplicadoSeAceptaEnSilencio(t *testing.T) {
	// Contrato observado: no hay chequeo de unicidad de email
	uc, _ := newUserUC(t)
	_, err := uc.Add(dto.CreateUserRequest{Email: "admin@example.com", Password: "otra", Role: "admin"})
	require.NoError(t, err)

	users, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestUserGetByID_AusenciaNoEsError(t *testing.T) {
	uc, _ := newUserUC(t)

	u, err := uc.GetByID("1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Admin User", u.Name)

	u, err = uc.GetByID("user-fantasma")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestCompanyAdd_DuplicadoSeAceptaEnSilencio(t *testing.T) {
	r := newRepos(t)
	require.NoError(t, newBootstrap(r).Initialize())
	uc := usecase.NewCompanyUseCase(r.companies)

	c, err := uc.Add(dto.CreateCompanyRequest{Name: "Tech Solutions Inc."})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	companies, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, companies, 4)
}
