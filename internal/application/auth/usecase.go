package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/storefront-api/internal/application/dto"
	"github.com/tu-usuario/storefront-api/internal/domain"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	"github.com/tu-usuario/storefront-api/internal/domain/repository"
	"github.com/tu-usuario/storefront-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Nombres de token según el flujo que lo emitió.
const (
	tokenNameRegistration = "api_registration_token"
	tokenNameLogin        = "api_login_token"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y cuenta actual.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenRepo: tokenRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta (el password llega ya validado, se hashea con
// bcrypt) y emite su primer token. Devuelve ErrEmailAlreadyExists si el email
// ya está tomado, incluida la carrera contra el índice único.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.FindByEmail(email)
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
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := uc.issueToken(user, tokenNameRegistration)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: dto.ToUserResponse(user), Token: token}, nil
}

// Login verifica credenciales y emite un nuevo token. Cuenta inexistente y
// password incorrecto devuelven el mismo ErrUnauthorized: la respuesta nunca
// revela si el email existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := uc.issueToken(user, tokenNameLogin)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: dto.ToUserResponse(user), Token: token}, nil
}

// Logout revoca el token presentado. Revocar un token ya revocado no es error.
func (uc *AuthUseCase) Logout(tokenID string) error {
	return uc.tokenRepo.Delete(tokenID)
}

// CurrentUser devuelve la cuenta del userID autenticado.
func (uc *AuthUseCase) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// issueToken registra la fila de access_tokens y firma el JWT con su id como jti.
func (uc *AuthUseCase) issueToken(user *entity.User, name string) (string, error) {
	record := &entity.AccessToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.tokenRepo.Create(record); err != nil {
		return "", err
	}
	return jwt.Generate(uc.jwtCfg.Secret, user.ID, record.ID, user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
