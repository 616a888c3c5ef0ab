package warehouse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embalse/deposito-api/internal/domain"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/warehouse"
)

func TestSlotCode(t *testing.T) {
	assert.Equal(t, "R1-F1-C1-P1", warehouse.SlotCode("R1", 1, 1, 1))
	assert.Equal(t, "EST-A-F3-C12-P2", warehouse.SlotCode("EST-A", 3, 12, 2))
}

func TestValidateRackDimensions(t *testing.T) {
	assert.NoError(t, warehouse.ValidateRackDimensions(1, 1, 1))
	assert.NoError(t, warehouse.ValidateRackDimensions(10, 20, 10))

	casos := []struct {
		nombre              string
		rows, columns, depth int
	}{
		{"filas cero", 0, 5, 2},
		{"filas sobre el límite", 11, 5, 2},
		{"columnas cero", 3, 0, 2},
		{"columnas sobre el límite", 3, 21, 2},
		{"profundidad cero", 3, 5, 0},
		{"profundidad sobre el límite", 3, 5, 11},
		{"negativas", -1, -1, -1},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := warehouse.ValidateRackDimensions(c.rows, c.columns, c.depth)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGenerateGrid_DimensionesYCodigos(t *testing.T) {
	slots := warehouse.GenerateGrid("rack-1", "R1", 3, 5, 2)
	require.Len(t, slots, 30, "3 filas × 5 columnas × 2 profundidad = 30 ubicaciones")

	// Todas LIBRE, sin pallet y con el rack correcto
	for _, s := range slots {
		assert.Equal(t, entity.SlotFree, s.State)
		assert.Nil(t, s.PalletID)
		assert.Equal(t, "rack-1", s.RackID)
	}

	// Orden (fila, columna, profundidad) ascendente
	assert.Equal(t, "R1-F1-C1-P1", slots[0].Code)
	assert.Equal(t, "R1-F1-C1-P2", slots[1].Code)
	assert.Equal(t, "R1-F1-C2-P1", slots[2].Code)
	assert.Equal(t, "R1-F3-C5-P2", slots[len(slots)-1].Code)

	// Códigos únicos
	seen := make(map[string]bool, len(slots))
	for _, s := range slots {
		assert.False(t, seen[s.Code], "código duplicado: %s", s.Code)
		seen[s.Code] = true
	}
}

func TestGenerateGrid_Minima(t *testing.T) {
	slots := warehouse.GenerateGrid("rack-1", "R1", 1, 1, 1)
	require.Len(t, slots, 1)
	assert.Equal(t, "R1-F1-C1-P1", slots[0].Code)
}
