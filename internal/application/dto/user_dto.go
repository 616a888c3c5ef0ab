package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el use case).
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"required,oneof=ADMIN ENCARGADO OPERARIO"`
	DepotID  *string `json:"depot_id" validate:"omitempty,uuid"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password vacío = no
// cambiar.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN ENCARGADO OPERARIO"`
	DepotID  *string `json:"depot_id" validate:"omitempty,uuid"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	DepotID   *string   `json:"depot_id,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
