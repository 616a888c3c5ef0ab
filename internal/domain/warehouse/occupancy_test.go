package warehouse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/embalse/deposito-api/internal/domain/warehouse"
)

func TestNewOccupancy_SinUbicaciones(t *testing.T) {
	occ := warehouse.NewOccupancy(0, 0, 0)
	assert.Equal(t, 0, occ.Total)
	assert.Equal(t, 0, occ.Percentage, "depósito sin racks reporta 0%, no divide por cero")
}

func TestNewOccupancy_Redondeo(t *testing.T) {
	casos := []struct {
		total, occupied, want int
	}{
		{3, 1, 33},  // 33.33 → 33
		{3, 2, 67},  // 66.67 → 67
		{8, 1, 13},  // 12.5 → 13
		{100, 50, 50},
		{30, 30, 100},
		{30, 0, 0},
	}
	for _, c := range casos {
		occ := warehouse.NewOccupancy(c.total, c.occupied, c.total-c.occupied)
		assert.Equal(t, c.want, occ.Percentage, "%d/%d", c.occupied, c.total)
	}
}

func TestNewOccupancy_ReservadasNoSonLibresNiOcupadas(t *testing.T) {
	// 10 ubicaciones: 4 ocupadas, 3 reservadas, 3 libres
	occ := warehouse.NewOccupancy(10, 4, 3)
	assert.Equal(t, 10, occ.Total)
	assert.Equal(t, 4, occ.Occupied)
	assert.Equal(t, 3, occ.Free)
	assert.Equal(t, 40, occ.Percentage)
}
