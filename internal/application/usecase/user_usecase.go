package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/storefront-api/internal/application/dto"
	"github.com/tu-usuario/storefront-api/internal/domain"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	"github.com/tu-usuario/storefront-api/internal/domain/policy"
	"github.com/tu-usuario/storefront-api/internal/domain/query"
	"github.com/tu-usuario/storefront-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de cuentas (superficie admin). Las mutaciones
// sobre otra cuenta pasan por la policy de auto-protección; el gate por rol
// del endpoint ya corrió antes.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de cuentas.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve la página de cuentas y sus metadatos de paginación.
func (uc *UserUseCase) List(params query.UserParams) ([]*entity.User, query.Meta, error) {
	items, total, err := uc.repo.List(params)
	if err != nil {
		return nil, query.Meta{}, err
	}
	return items, query.PageMeta(params.Page, total, len(items)), nil
}

// GetByID devuelve una cuenta, o (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id string) (*entity.User, error) {
	return uc.repo.GetByID(id)
}

// Create persiste una cuenta nueva a partir de una petición ya validada.
// Devuelve ErrEmailAlreadyExists si el email está tomado.
func (uc *UserUseCase) Create(in dto.StoreUserRequest) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := entity.RoleCustomer
	if in.Role != "" {
		if parsed, ok := entity.ParseRole(in.Role); ok {
			role = parsed
		}
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update aplica una actualización parcial sobre target en nombre de actor.
// Devuelve (nil, nil) si target no existe; *policy.DeniedError si la policy
// bloquea (un admin degradándose a sí mismo); ErrEmailAlreadyExists si el
// email nuevo pertenece a otra cuenta.
func (uc *UserUseCase) Update(actorID, targetID string, in dto.UpdateUserRequest) (*entity.User, error) {
	actor, err := uc.repo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	target, err := uc.repo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, nil
	}

	var proposedRole *entity.Role
	if in.Role != nil {
		if parsed, ok := entity.ParseRole(*in.Role); ok {
			proposedRole = &parsed
		}
	}
	if err := policy.CanUpdate(actor, target, proposedRole).Err(); err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != target.Email {
			existing, err := uc.repo.FindByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != target.ID {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		target.Email = email
	}
	if in.Name != nil {
		target.Name = *in.Name
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		target.PasswordHash = string(hash)
	}
	if proposedRole != nil {
		target.Role = *proposedRole
	}
	target.UpdatedAt = time.Now()

	if err := uc.repo.Update(target); err != nil {
		return nil, err
	}
	return target, nil
}

// Delete elimina target en nombre de actor. found=false si target no existe;
// *policy.DeniedError si actor intenta eliminar su propia cuenta.
func (uc *UserUseCase) Delete(actorID, targetID string) (found bool, err error) {
	actor, err := uc.repo.GetByID(actorID)
	if err != nil {
		return false, err
	}
	if actor == nil {
		return false, domain.ErrUnauthorized
	}
	target, err := uc.repo.GetByID(targetID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, nil
	}
	if err := policy.CanDelete(actor, target).Err(); err != nil {
		return true, err
	}
	if err := uc.repo.Delete(targetID); err != nil {
		return true, err
	}
	return true, nil
}
