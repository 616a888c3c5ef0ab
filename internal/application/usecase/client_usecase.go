package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/embalse/deposito-api/internal/application/dto"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes (soft delete).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente activo.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		LegalName: in.LegalName,
		TaxID:     in.TaxID,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Email:     in.Email,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// Update actualiza los datos de un cliente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.LegalName != nil {
		client.LegalName = *in.LegalName
	}
	if in.TaxID != nil {
		client.TaxID = *in.TaxID
	}
	if in.Contact != nil {
		client.Contact = *in.Contact
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes activos ordenados por razón social.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return items, nil
}

// Delete desactiva el cliente (soft delete); el histórico queda referenciable.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.repo.Deactivate(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		LegalName: c.LegalName,
		TaxID:     c.TaxID,
		Contact:   c.Contact,
		Phone:     c.Phone,
		Email:     c.Email,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
