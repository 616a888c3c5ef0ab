package warehouse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embalse/deposito-api/internal/application/warehouse"
	"github.com/embalse/deposito-api/internal/domain"
	"github.com/embalse/deposito-api/internal/domain/entity"
)

func newRackUC(s *store) *warehouse.RackUseCase {
	return warehouse.NewRackUseCase(&memTxRunner{s: s}, &memDepotRepo{s}, &memRackRepo{s}, &memSlotRepo{s})
}

func TestCreateRack_GeneraGrillaYCapacidad(t *testing.T) {
	s := newStore()
	depot := s.addDepot("Depósito Central")
	uc := newRackUC(s)

	rack, err := uc.CreateRack(context.Background(), warehouse.CreateRackInput{
		DepotID: depot.ID, Code: "R1", Rows: 3, Columns: 5, Depth: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, rack)
	assert.Equal(t, depot.ID, rack.DepotID)

	slots := s.slotsOfDepot(depot.ID)
	require.Len(t, slots, 30, "3×5×2 = 30 ubicaciones")
	for _, sl := range slots {
		assert.Equal(t, entity.SlotFree, sl.State)
		assert.NotEmpty(t, sl.ID)
	}
	assert.Equal(t, 30, s.depots[depot.ID].TotalCapacity,
		"la capacidad del depósito se recalcula en la misma transacción")
}

func TestCreateRack_DimensionesInvalidas(t *testing.T) {
	s := newStore()
	depot := s.addDepot("Depósito Central")
	uc := newRackUC(s)

	casos := []warehouse.CreateRackInput{
		{DepotID: depot.ID, Code: "R1", Rows: 0, Columns: 5, Depth: 2},
		{DepotID: depot.ID, Code: "R1", Rows: 11, Columns: 5, Depth: 2},
		{DepotID: depot.ID, Code: "R1", Rows: 3, Columns: 21, Depth: 2},
		{DepotID: depot.ID, Code: "R1", Rows: 3, Columns: 5, Depth: 11},
		{DepotID: depot.ID, Code: "", Rows: 3, Columns: 5, Depth: 2},
	}
	for _, in := range casos {
		_, err := uc.CreateRack(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, s.racks, "ningún rack debe haberse creado")
	assert.Equal(t, 0, s.depots[depot.ID].TotalCapacity)
}

func TestCreateRack_DepositoInexistente(t *testing.T) {
	s := newStore()
	uc := newRackUC(s)

	_, err := uc.CreateRack(context.Background(), warehouse.CreateRackInput{
		DepotID: "no-existe", Code: "R1", Rows: 3, Columns: 5, Depth: 2,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateRack_SegundoRackAcumulaCapacidad(t *testing.T) {
	s := newStore()
	depot := s.addDepot("Depósito Central")
	uc := newRackUC(s)

	_, err := uc.CreateRack(context.Background(), warehouse.CreateRackInput{
		DepotID: depot.ID, Code: "R1", Rows: 3, Columns: 5, Depth: 2,
	})
	require.NoError(t, err)
	_, err = uc.CreateRack(context.Background(), warehouse.CreateRackInput{
		DepotID: depot.ID, Code: "R2", Rows: 1, Columns: 1, Depth: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 31, s.depots[depot.ID].TotalCapacity)
}

func TestDeleteRack_LibreSeEliminaYRecalcula(t *testing.T) {
	s := newStore()
	depot := s.addDepot("Depósito Central")
	rack, _ := s.addRackWithGrid(depot.ID, "R1", 2, 2, 1)
	s.addRackWithGrid(depot.ID, "R2", 1, 1, 1)
	uc := newRackUC(s)

	require.NoError(t, uc.DeleteRack(context.Background(), rack.ID))

	assert.NotContains(t, s.racks, rack.ID)
	assert.Len(t, s.slotsOfDepot(depot.ID), 1, "solo quedan las ubicaciones de R2")
	assert.Equal(t, 1, s.depots[depot.ID].TotalCapacity)
}

func TestDeleteRack_ConUbicacionOcupada(t *testing.T) {
	s := newStore()
	depot := s.addDepot("Depósito Central")
	client := s.addClient("ACME SA")
	product := s.addProduct(client.ID, "P-1")
	rack, slots := s.addRackWithGrid(depot.ID, "R1", 2, 2, 1)
	s.addPalletInSlot(product.ID, slots[0].ID)
	uc := newRackUC(s)

	err := uc.DeleteRack(context.Background(), rack.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.Contains(t, s.racks, rack.ID, "el rack sigue existiendo")
	assert.Len(t, s.slotsOfDepot(depot.ID), 4, "ninguna ubicación se eliminó")
	assert.Equal(t, 4, s.depots[depot.ID].TotalCapacity)
}

func TestDeleteRack_ConReservadasBloqueada(t *testing.T) {
	// Una RESERVADA pertenece a un ingreso pendiente cuyo pallet referencia
	// la ubicación, así que bloquea igual que una OCUPADA.
	s := newStore()
	depot := s.addDepot("Depósito Central")
	rack, slots := s.addRackWithGrid(depot.ID, "R1", 1, 2, 1)
	s.slots[slots[0].ID].State = entity.SlotReserved
	uc := newRackUC(s)

	assert.ErrorIs(t, uc.DeleteRack(context.Background(), rack.ID), domain.ErrConflict)

	// Sin efectos: rack, ubicaciones y capacidad intactos
	require.Contains(t, s.racks, rack.ID)
	assert.Len(t, s.slotsOfDepot(depot.ID), 2)
	assert.Equal(t, 2, s.depots[depot.ID].TotalCapacity)
}

func TestDeleteRack_Inexistente(t *testing.T) {
	s := newStore()
	uc := newRackUC(s)
	assert.ErrorIs(t, uc.DeleteRack(context.Background(), "no-existe"), domain.ErrNotFound)
}
