package dto

import (
	"net/mail"
	"time"

	"github.com/tu-usuario/storefront-api/internal/domain/entity"
)

// UserResponse shape de una cuenta. Nunca incluye password ni hash.
type UserResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ToUserResponse proyección de una cuenta.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role.String(),
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// ToUserResponses proyección de una página de cuentas.
func ToUserResponses(items []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, ToUserResponse(u))
	}
	return out
}

// StoreUserRequest entrada para crear una cuenta (admin).
type StoreUserRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 string `json:"role"`
}

// Validate valida la creación de cuenta. La unicidad del email la comprueba
// el use case contra el repositorio y agrega su error al mismo mapa.
func (r *StoreUserRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	validateName(errs, r.Name, true)
	validateEmail(errs, r.Email, true)
	validatePassword(errs, r.Password, r.PasswordConfirmation, true)
	if r.Role != "" {
		if _, ok := entity.ParseRole(r.Role); !ok {
			errs.Add("role", "The selected role is invalid.")
		}
	}
	return errs
}

// UpdateUserRequest entrada para actualizar una cuenta (admin).
// Los campos en nil no se modifican. Un cambio de rol sobre la propia cuenta
// pasa además por la policy de auto-protección.
type UpdateUserRequest struct {
	Name                 *string `json:"name"`
	Email                *string `json:"email"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`
	Role                 *string `json:"role"`
}

// Validate valida la actualización parcial.
func (r *UpdateUserRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if r.Name != nil {
		validateName(errs, *r.Name, true)
	}
	if r.Email != nil {
		validateEmail(errs, *r.Email, true)
	}
	if r.Password != nil {
		confirmation := ""
		if r.PasswordConfirmation != nil {
			confirmation = *r.PasswordConfirmation
		}
		validatePassword(errs, *r.Password, confirmation, true)
	}
	if r.Role != nil {
		if _, ok := entity.ParseRole(*r.Role); !ok {
			errs.Add("role", "The selected role is invalid.")
		}
	}
	return errs
}

func validateName(errs ValidationErrors, name string, required bool) {
	if name == "" {
		if required {
			errs.Add("name", "The name field is required.")
		}
		return
	}
	if len(name) > 255 {
		errs.Add("name", "The name field must not be greater than 255 characters.")
	}
}

func validateEmail(errs ValidationErrors, email string, required bool) {
	if email == "" {
		if required {
			errs.Add("email", "The email field is required.")
		}
		return
	}
	if len(email) > 255 {
		errs.Add("email", "The email field must not be greater than 255 characters.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "The email field must be a valid email address.")
	}
}

func validatePassword(errs ValidationErrors, password, confirmation string, required bool) {
	if password == "" {
		if required {
			errs.Add("password", "The password field is required.")
		}
		return
	}
	if len(password) < 8 {
		errs.Add("password", "The password field must be at least 8 characters.")
	}
	if password != confirmation {
		errs.Add("password", "The password field confirmation does not match.")
	}
}
