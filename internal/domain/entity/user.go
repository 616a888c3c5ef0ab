package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "ADMIN"
	RoleEncargado = "ENCARGADO" // aprueba/anula remitos
	RoleOperario  = "OPERARIO"  // registra remitos y movimientos
)

// User representa un usuario del sistema, opcionalmente asignado a un depósito.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Role         string
	DepotID      *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
