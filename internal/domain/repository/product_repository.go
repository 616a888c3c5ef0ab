package repository

import "github.com/embalse/deposito-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List lista productos activos; clientID vacío = todos los clientes.
	List(clientID string) ([]*entity.Product, error)
	// Deactivate soft delete (Active = false).
	Deactivate(id string) error
	CountActive() (int, error)
}
