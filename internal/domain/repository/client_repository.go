package repository

import "github.com/embalse/deposito-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	// List lista clientes activos ordenados por razón social.
	List() ([]*entity.Client, error)
	// Deactivate soft delete (Active = false).
	Deactivate(id string) error
	CountActive() (int, error)
}
