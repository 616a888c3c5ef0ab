package warehouse

import (
	"fmt"

	"github.com/embalse/deposito-api/internal/domain"
	"github.com/embalse/deposito-api/internal/domain/entity"
)

// SlotCode devuelve el código determinístico de una ubicación:
// "{rackCode}-F{fila}-C{columna}-P{profundidad}".
func SlotCode(rackCode string, row, column, depth int) string {
	return fmt.Sprintf("%s-F%d-C%d-P%d", rackCode, row, column, depth)
}

// ValidateRackDimensions valida las dimensiones de un rack contra los límites
// operativos (filas 1..10, columnas 1..20, profundidad 1..10).
func ValidateRackDimensions(rows, columns, depth int) error {
	if rows < 1 || rows > entity.RackMaxRows {
		return domain.ErrInvalidInput
	}
	if columns < 1 || columns > entity.RackMaxColumns {
		return domain.ErrInvalidInput
	}
	if depth < 1 || depth > entity.RackMaxDepth {
		return domain.ErrInvalidInput
	}
	return nil
}

// GenerateGrid genera las filas×columnas×profundidad ubicaciones de un rack,
// todas LIBRE, en orden (fila, columna, profundidad) ascendente (servicio de
// dominio; los IDs los asigna el caller o el repositorio).
func GenerateGrid(rackID, rackCode string, rows, columns, depth int) []*entity.Slot {
	slots := make([]*entity.Slot, 0, rows*columns*depth)
	for f := 1; f <= rows; f++ {
		for c := 1; c <= columns; c++ {
			for p := 1; p <= depth; p++ {
				slots = append(slots, &entity.Slot{
					RackID: rackID,
					Row:    f,
					Column: c,
					Depth:  p,
					Code:   SlotCode(rackCode, f, c, p),
					State:  entity.SlotFree,
				})
			}
		}
	}
	return slots
}
