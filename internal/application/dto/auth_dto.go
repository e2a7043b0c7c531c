package dto

// RegisterRequest entrada del registro público. Mismo shape que StoreUserRequest
// (el rol es opcional, default customer), pero con tipo propio para que la
// superficie pública y la de admin puedan divergir sin romperse entre sí.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 string `json:"role"`
}

// Validate valida el registro con las mismas reglas que la creación admin.
func (r *RegisterRequest) Validate() ValidationErrors {
	store := StoreUserRequest{
		Name:                 r.Name,
		Email:                r.Email,
		Password:             r.Password,
		PasswordConfirmation: r.PasswordConfirmation,
		Role:                 r.Role,
	}
	return store.Validate()
}

// LoginRequest entrada del login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse salida de registro y login: la cuenta más el bearer token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
