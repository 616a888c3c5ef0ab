package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/embalse/deposito-api/internal/application/dto"
	"github.com/embalse/deposito-api/internal/domain"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos de clientes (soft delete).
type ProductUseCase struct {
	repo       repository.ProductRepository
	clientRepo repository.ClientRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, clientRepo repository.ClientRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, clientRepo: clientRepo}
}

// Create crea un producto activo para un cliente existente.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || !client.Active {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Code:        in.Code,
		Description: in.Description,
		UnitMeasure: in.UnitMeasure,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Code != nil {
		product.Code = *in.Code
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.UnitMeasure != nil {
		product.UnitMeasure = *in.UnitMeasure
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos activos; clientID vacío = todos los clientes.
func (uc *ProductUseCase) List(clientID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(clientID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete desactiva el producto (soft delete).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Deactivate(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Code:        p.Code,
		Description: p.Description,
		UnitMeasure: p.UnitMeasure,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
