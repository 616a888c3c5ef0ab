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

const testOperatorID = "00000000-0000-0000-0000-0000000000aa"

type movementFixture struct {
	s      *store
	uc     *warehouse.MovementUseCase
	pallet *entity.Pallet
	origin *entity.Slot
	free   *entity.Slot
}

// newMovementFixture arma un depósito con un rack 1×2×1: el pallet reside en
// la primera ubicación y la segunda queda LIBRE.
func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()
	s := newStore()
	depot := s.addDepot("Depósito Central")
	client := s.addClient("ACME SA")
	product := s.addProduct(client.ID, "P-1")
	_, slots := s.addRackWithGrid(depot.ID, "R1", 1, 2, 1)
	pallet := s.addPalletInSlot(product.ID, slots[0].ID)
	return &movementFixture{
		s:      s,
		uc:     warehouse.NewMovementUseCase(&memTxRunner{s: s}, &memMovementRepo{s}),
		pallet: pallet,
		origin: slots[0],
		free:   slots[1],
	}
}

func TestMovePallet_Exitoso(t *testing.T) {
	f := newMovementFixture(t)

	m, err := f.uc.MovePallet(context.Background(), warehouse.MoveInput{
		PalletID:   f.pallet.ID,
		ToSlotID:   f.free.ID,
		OperatorID: testOperatorID,
		Reason:     "consolidación",
	})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, f.origin.ID, m.FromSlotID)
	assert.Equal(t, f.free.ID, m.ToSlotID)

	// Origen liberado, destino ocupado, referencia mutua actualizada
	origin := f.s.slots[f.origin.ID]
	dest := f.s.slots[f.free.ID]
	assert.Equal(t, entity.SlotFree, origin.State)
	assert.Nil(t, origin.PalletID)
	assert.Equal(t, entity.SlotOccupied, dest.State)
	require.NotNil(t, dest.PalletID)
	assert.Equal(t, f.pallet.ID, *dest.PalletID)

	pallet := f.s.pallets[f.pallet.ID]
	require.NotNil(t, pallet.SlotID)
	assert.Equal(t, f.free.ID, *pallet.SlotID)

	require.Len(t, f.s.movements, 1)
	assert.Equal(t, "consolidación", f.s.movements[0].Reason)
}

func TestMovePallet_DestinoOcupado_SinEfectos(t *testing.T) {
	f := newMovementFixture(t)
	// Instala un segundo pallet en el destino
	product2 := f.s.addProduct(f.s.products[f.pallet.ProductID].ClientID, "P-2")
	f.s.addPalletInSlot(product2.ID, f.free.ID)

	_, err := f.uc.MovePallet(context.Background(), warehouse.MoveInput{
		PalletID:   f.pallet.ID,
		ToSlotID:   f.free.ID,
		OperatorID: testOperatorID,
	})
	assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)

	// Ningún efecto observable
	origin := f.s.slots[f.origin.ID]
	assert.Equal(t, entity.SlotOccupied, origin.State)
	require.NotNil(t, origin.PalletID)
	assert.Equal(t, f.pallet.ID, *origin.PalletID)
	pallet := f.s.pallets[f.pallet.ID]
	assert.Equal(t, f.origin.ID, *pallet.SlotID)
	assert.Empty(t, f.s.movements)
}

func TestMovePallet_DestinoReservado(t *testing.T) {
	f := newMovementFixture(t)
	f.s.slots[f.free.ID].State = entity.SlotReserved

	_, err := f.uc.MovePallet(context.Background(), warehouse.MoveInput{
		PalletID:   f.pallet.ID,
		ToSlotID:   f.free.ID,
		OperatorID: testOperatorID,
	})
	assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)
}

func TestMovePallet_DestinoInexistente(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.MovePallet(context.Background(), warehouse.MoveInput{
		PalletID:   f.pallet.ID,
		ToSlotID:   "no-existe",
		OperatorID: testOperatorID,
	})
	assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)
}

func TestMovePallet_PalletInactivo(t *testing.T) {
	f := newMovementFixture(t)
	f.s.pallets[f.pallet.ID].Active = false

	_, err := f.uc.MovePallet(context.Background(), warehouse.MoveInput{
		PalletID:   f.pallet.ID,
		ToSlotID:   f.free.ID,
		OperatorID: testOperatorID,
	})
	assert.ErrorIs(t, err, domain.ErrPalletNotAvailable)
	assert.Empty(t, f.s.movements)
}

func TestMovePallet_PalletSinUbicacion(t *testing.T) {
	f := newMovementFixture(t)
	f.s.pallets[f.pallet.ID].SlotID = nil

	_, err := f.uc.MovePallet(context.Background(), warehouse.MoveInput{
		PalletID:   f.pallet.ID,
		ToSlotID:   f.free.ID,
		OperatorID: testOperatorID,
	})
	assert.ErrorIs(t, err, domain.ErrPalletNotAvailable)
}

func TestMovePallet_PalletInexistente(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.MovePallet(context.Background(), warehouse.MoveInput{
		PalletID:   "no-existe",
		ToSlotID:   f.free.ID,
		OperatorID: testOperatorID,
	})
	assert.ErrorIs(t, err, domain.ErrPalletNotAvailable)
}

func TestMovePallet_EntradaIncompleta(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.MovePallet(context.Background(), warehouse.MoveInput{
		PalletID: f.pallet.ID, ToSlotID: f.free.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "operator_id es requerido")
}

func TestListByDepot_FiltraPorOrigen(t *testing.T) {
	f := newMovementFixture(t)
	_, err := f.uc.MovePallet(context.Background(), warehouse.MoveInput{
		PalletID:   f.pallet.ID,
		ToSlotID:   f.free.ID,
		OperatorID: testOperatorID,
	})
	require.NoError(t, err)

	depotID := f.s.racks[f.origin.RackID].DepotID
	list, err := f.uc.ListByDepot(context.Background(), depotID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	otros, err := f.uc.ListByDepot(context.Background(), "otro-deposito")
	require.NoError(t, err)
	assert.Empty(t, otros)
}

// Dos movimientos que compiten por la misma ubicación destino: el que
// commitea primero gana y el otro sube como conflicto de serialización,
// sin dejar ningún efecto propio.
func TestMovePallet_CarreraPorElMismoDestino_GanaUnoSolo(t *testing.T) {
	s := newStore()
	depot := s.addDepot("Depósito Central")
	client := s.addClient("ACME SA")
	product := s.addProduct(client.ID, "P-1")
	_, slots := s.addRackWithGrid(depot.ID, "R1", 1, 3, 1)
	palletA := s.addPalletInSlot(product.ID, slots[0].ID)
	palletB := s.addPalletInSlot(product.ID, slots[1].ID)
	dest := slots[2]

	winner := warehouse.NewMovementUseCase(&memTxRunner{s: s}, &memMovementRepo{s})

	loserRunner := &memTxRunner{s: s}
	// Entre la lectura del perdedor y su commit, el ganador mueve su pallet
	// al mismo destino
	loserRunner.interleave = func() {
		_, err := winner.MovePallet(context.Background(), warehouse.MoveInput{
			PalletID:   palletA.ID,
			ToSlotID:   dest.ID,
			OperatorID: testOperatorID,
		})
		require.NoError(t, err)
	}
	loser := warehouse.NewMovementUseCase(loserRunner, &memMovementRepo{s})

	_, err := loser.MovePallet(context.Background(), warehouse.MoveInput{
		PalletID:   palletB.ID,
		ToSlotID:   dest.ID,
		OperatorID: testOperatorID,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// El destino queda ocupado por exactamente un pallet: el ganador
	final := s.slots[dest.ID]
	assert.Equal(t, entity.SlotOccupied, final.State)
	require.NotNil(t, final.PalletID)
	assert.Equal(t, palletA.ID, *final.PalletID)

	// El perdedor sigue en su origen y solo quedó registrado un movimiento
	b := s.pallets[palletB.ID]
	require.NotNil(t, b.SlotID)
	assert.Equal(t, slots[1].ID, *b.SlotID)
	assert.Equal(t, entity.SlotOccupied, s.slots[slots[1].ID].State)
	require.Len(t, s.movements, 1)
	assert.Equal(t, palletA.ID, s.movements[0].PalletID)
}
