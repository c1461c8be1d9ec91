package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/domain"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
)

// UserUseCase altas y consultas sobre el directorio de usuarios.
type UserUseCase struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(users repository.UserRepository, bcryptCost int) *UserUseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{users: users, bcryptCost: bcryptCost}
}

// Add crea un usuario: hashea la contraseña con bcrypt y persiste. No hay
// chequeo de unicidad de email: los duplicados se aceptan en silencio
// (contrato observado; ver DESIGN.md).
func (uc *UserUseCase) Add(in dto.CreateUserRequest) (*entity.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son requeridos", domain.ErrInvalidInput)
	}
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, in.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           "user-" + uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
	}
	if err := uc.users.Add(user); err != nil {
		return nil, err
	}
	return user, nil
}

// List devuelve el directorio completo en orden de inserción.
func (uc *UserUseCase) List() ([]*entity.User, error) {
	return uc.users.List()
}

// GetByID búsqueda puntual; nil cuando no existe (la ausencia no es error).
func (uc *UserUseCase) GetByID(id string) (*entity.User, error) {
	return uc.users.GetByID(id)
}
