package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=3"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LogoutRequest struct {
	Token string `json:"token"`
}

// CheckAdmin is the role-lookup collaborator contract; field names follow
// the wire format the lookup client expects.
type CheckAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CheckAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
