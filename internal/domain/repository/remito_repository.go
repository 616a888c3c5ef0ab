package repository

import (
	"time"

	"github.com/embalse/deposito-api/internal/domain/entity"
)

// RemitoFilter filtros opcionales para listar remitos (vacío = sin filtro).
type RemitoFilter struct {
	Type     string
	ClientID string
	DepotID  string
	State    string
}

// RemitoRepository define el puerto de persistencia para remitos y sus líneas.
type RemitoRepository interface {
	Create(remito *entity.Remito) error
	CreateLine(line *entity.RemitoLine) error
	// GetByID devuelve el remito con sus líneas.
	GetByID(id string) (*entity.Remito, error)
	// GetForUpdate bloquea la fila del remito y devuelve el documento con líneas.
	GetForUpdate(id string) (*entity.Remito, error)
	// SetState fija el estado y, si encargadoID no es nil, estampa el aprobador.
	SetState(id, state string, encargadoID *string) error
	List(filter RemitoFilter) ([]*entity.Remito, error)
	// CountSince cuenta remitos con fecha >= el instante dado (dashboard).
	CountSince(from time.Time) (int, error)
}
