package repository

import "github.com/embalse/deposito-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// List lista usuarios activos ordenados por nombre.
	List() ([]*entity.User, error)
	// Deactivate soft delete (Active = false).
	Deactivate(id string) error
}
