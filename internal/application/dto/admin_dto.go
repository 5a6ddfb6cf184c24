package dto

import "time"

// AdminLoginRequest entrada del login de admin.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse salida del login: el token viaja en la cookie de sesión.
type AdminLoginResponse struct {
	Success bool `json:"success"`
}

// AdminSessionResponse estado de la sesión actual.
type AdminSessionResponse struct {
	Success   bool      `json:"success"`
	ExpiresAt time.Time `json:"expires_at"`
}
