package warehouse_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/embalse/deposito-api/internal/application/warehouse"
	"github.com/embalse/deposito-api/internal/domain"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
	domwarehouse "github.com/embalse/deposito-api/internal/domain/warehouse"
)

// store es la base de datos en memoria para los tests del motor. memTxRunner
// clona el store al iniciar cada transacción y recién al commit reemplaza el
// original, de modo que un error a mitad de camino no deja ningún efecto
// observable (mismas garantías de atomicidad que la transacción real).
type store struct {
	version   int // se incrementa en cada commit; detecta escritores cruzados
	depots    map[string]*entity.Depot
	racks     map[string]*entity.Rack
	slots     map[string]*entity.Slot
	clients   map[string]*entity.Client
	products  map[string]*entity.Product
	pallets   map[string]*entity.Pallet
	remitos   map[string]*entity.Remito
	movements []*entity.Movement
}

func newStore() *store {
	return &store{
		depots:   make(map[string]*entity.Depot),
		racks:    make(map[string]*entity.Rack),
		slots:    make(map[string]*entity.Slot),
		clients:  make(map[string]*entity.Client),
		products: make(map[string]*entity.Product),
		pallets:  make(map[string]*entity.Pallet),
		remitos:  make(map[string]*entity.Remito),
	}
}

func strPtr(s string) *string { return &s }

func copySlot(s *entity.Slot) *entity.Slot {
	c := *s
	if s.PalletID != nil {
		c.PalletID = strPtr(*s.PalletID)
	}
	return &c
}

func copyPallet(p *entity.Pallet) *entity.Pallet {
	c := *p
	if p.SlotID != nil {
		c.SlotID = strPtr(*p.SlotID)
	}
	if p.EgressAt != nil {
		t := *p.EgressAt
		c.EgressAt = &t
	}
	return &c
}

func copyRemito(r *entity.Remito) *entity.Remito {
	c := *r
	if r.EncargadoID != nil {
		c.EncargadoID = strPtr(*r.EncargadoID)
	}
	c.Lines = make([]*entity.RemitoLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lc := *l
		if l.PalletID != nil {
			lc.PalletID = strPtr(*l.PalletID)
		}
		c.Lines = append(c.Lines, &lc)
	}
	return &c
}

func (s *store) clone() *store {
	c := newStore()
	c.version = s.version
	for id, d := range s.depots {
		v := *d
		c.depots[id] = &v
	}
	for id, r := range s.racks {
		v := *r
		c.racks[id] = &v
	}
	for id, sl := range s.slots {
		c.slots[id] = copySlot(sl)
	}
	for id, cl := range s.clients {
		v := *cl
		c.clients[id] = &v
	}
	for id, p := range s.products {
		v := *p
		c.products[id] = &v
	}
	for id, p := range s.pallets {
		c.pallets[id] = copyPallet(p)
	}
	for id, r := range s.remitos {
		c.remitos[id] = copyRemito(r)
	}
	c.movements = make([]*entity.Movement, 0, len(s.movements))
	for _, m := range s.movements {
		v := *m
		c.movements = append(c.movements, &v)
	}
	return c
}

// Seed helpers

func (s *store) addDepot(name string) *entity.Depot {
	d := &entity.Depot{ID: uuid.New().String(), Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.depots[d.ID] = d
	return d
}

func (s *store) addRackWithGrid(depotID, code string, rows, columns, depth int) (*entity.Rack, []*entity.Slot) {
	r := &entity.Rack{
		ID: uuid.New().String(), DepotID: depotID, Code: code,
		Rows: rows, Columns: columns, Depth: depth, CreatedAt: time.Now(),
	}
	s.racks[r.ID] = r
	slots := domwarehouse.GenerateGrid(r.ID, code, rows, columns, depth)
	for _, sl := range slots {
		sl.ID = uuid.New().String()
		s.slots[sl.ID] = sl
	}
	s.depots[depotID].TotalCapacity = len(s.slotsOfDepot(depotID))
	return r, slots
}

func (s *store) addClient(name string) *entity.Client {
	c := &entity.Client{ID: uuid.New().String(), LegalName: name, TaxID: uuid.New().String(), Active: true}
	s.clients[c.ID] = c
	return c
}

func (s *store) addProduct(clientID, code string) *entity.Product {
	p := &entity.Product{ID: uuid.New().String(), ClientID: clientID, Code: code, Description: code, UnitMeasure: "UN", Active: true}
	s.products[p.ID] = p
	return p
}

// addPalletInSlot instala un pallet activo residente en la ubicación dada
// (OCUPADA, referencia mutua), como quedaría tras un ingreso aprobado.
func (s *store) addPalletInSlot(productID, slotID string) *entity.Pallet {
	p := &entity.Pallet{
		ID: uuid.New().String(), ProductID: productID, Lot: "L-1",
		Quantity: decimal.NewFromInt(10), Completeness: entity.PalletComplete,
		Active: true, SlotID: strPtr(slotID), IngressAt: time.Now(),
	}
	s.pallets[p.ID] = p
	sl := s.slots[slotID]
	sl.State = entity.SlotOccupied
	sl.PalletID = strPtr(p.ID)
	return p
}

func (s *store) slotsOfDepot(depotID string) []*entity.Slot {
	var out []*entity.Slot
	for _, sl := range s.slots {
		if r, ok := s.racks[sl.RackID]; ok && r.DepotID == depotID {
			out = append(out, sl)
		}
	}
	return out
}

// memTxRunner implementa warehouse.TxRunner sobre el store en memoria con
// semántica de commit/rollback por clonado. Si otro commit entra entre la
// instantánea y el propio commit, la transacción falla con domain.ErrConflict,
// igual que una serialization_failure traducida por la capa de persistencia.
type memTxRunner struct {
	s *store
	// interleave se ejecuta una sola vez, después de tomar la instantánea y
	// antes del callback: simula un escritor concurrente que commitea primero.
	interleave func()
}

func (r *memTxRunner) Run(ctx context.Context, fn func(w warehouse.Repos) error) error {
	base := r.s.version
	work := r.s.clone()
	if r.interleave != nil {
		competing := r.interleave
		r.interleave = nil
		competing()
	}
	if err := fn(reposFor(work)); err != nil {
		return err
	}
	if r.s.version != base {
		return domain.ErrConflict
	}
	work.version = base + 1
	*r.s = *work
	return nil
}

func reposFor(s *store) warehouse.Repos {
	return warehouse.Repos{
		Depots:    &memDepotRepo{s},
		Racks:     &memRackRepo{s},
		Slots:     &memSlotRepo{s},
		Pallets:   &memPalletRepo{s},
		Remitos:   &memRemitoRepo{s},
		Movements: &memMovementRepo{s},
	}
}

// memDepotRepo

type memDepotRepo struct{ s *store }

var _ repository.DepotRepository = (*memDepotRepo)(nil)

func (r *memDepotRepo) Create(d *entity.Depot) error {
	v := *d
	r.s.depots[d.ID] = &v
	return nil
}

func (r *memDepotRepo) GetByID(id string) (*entity.Depot, error) {
	d, ok := r.s.depots[id]
	if !ok {
		return nil, nil
	}
	v := *d
	return &v, nil
}

func (r *memDepotRepo) Update(d *entity.Depot) error {
	if _, ok := r.s.depots[d.ID]; !ok {
		return fmt.Errorf("depósito %s no encontrado", d.ID)
	}
	v := *d
	r.s.depots[d.ID] = &v
	return nil
}

func (r *memDepotRepo) List() ([]*entity.Depot, error) {
	out := make([]*entity.Depot, 0, len(r.s.depots))
	for _, d := range r.s.depots {
		v := *d
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memDepotRepo) UpdateCapacity(id string, capacity int) error {
	d, ok := r.s.depots[id]
	if !ok {
		return fmt.Errorf("depósito %s no encontrado", id)
	}
	d.TotalCapacity = capacity
	return nil
}

// memRackRepo

type memRackRepo struct{ s *store }

var _ repository.RackRepository = (*memRackRepo)(nil)

func (r *memRackRepo) Create(rack *entity.Rack) error {
	v := *rack
	r.s.racks[rack.ID] = &v
	return nil
}

func (r *memRackRepo) GetByID(id string) (*entity.Rack, error) {
	rack, ok := r.s.racks[id]
	if !ok {
		return nil, nil
	}
	v := *rack
	return &v, nil
}

func (r *memRackRepo) ListByDepot(depotID string) ([]*entity.Rack, error) {
	var out []*entity.Rack
	for _, rack := range r.s.racks {
		if rack.DepotID == depotID {
			v := *rack
			out = append(out, &v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *memRackRepo) Delete(id string) error {
	delete(r.s.racks, id)
	for slotID, sl := range r.s.slots {
		if sl.RackID == id {
			delete(r.s.slots, slotID)
		}
	}
	return nil
}

// memSlotRepo

type memSlotRepo struct{ s *store }

var _ repository.SlotRepository = (*memSlotRepo)(nil)

func (r *memSlotRepo) BulkCreate(slots []*entity.Slot) error {
	for _, sl := range slots {
		r.s.slots[sl.ID] = copySlot(sl)
	}
	return nil
}

func (r *memSlotRepo) GetByID(id string) (*entity.Slot, error) {
	sl, ok := r.s.slots[id]
	if !ok {
		return nil, nil
	}
	return copySlot(sl), nil
}

func (r *memSlotRepo) GetForUpdate(id string) (*entity.Slot, error) {
	return r.GetByID(id)
}

func (r *memSlotRepo) SetState(id, state string, palletID *string) error {
	sl, ok := r.s.slots[id]
	if !ok {
		return fmt.Errorf("ubicación %s no encontrada", id)
	}
	sl.State = state
	if palletID != nil {
		sl.PalletID = strPtr(*palletID)
	} else {
		sl.PalletID = nil
	}
	return nil
}

func (r *memSlotRepo) ListFreeByDepot(depotID string) ([]*entity.Slot, error) {
	var out []*entity.Slot
	for _, sl := range r.s.slotsOfDepot(depotID) {
		if sl.State == entity.SlotFree {
			out = append(out, copySlot(sl))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *memSlotRepo) ListByRack(rackID string) ([]*entity.Slot, error) {
	var out []*entity.Slot
	for _, sl := range r.s.slots {
		if sl.RackID == rackID {
			out = append(out, copySlot(sl))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *memSlotRepo) CountByRackAndState(rackID, state string) (int, error) {
	n := 0
	for _, sl := range r.s.slots {
		if sl.RackID == rackID && sl.State == state {
			n++
		}
	}
	return n, nil
}

func (r *memSlotRepo) CountByDepot(depotID string) (int, error) {
	return len(r.s.slotsOfDepot(depotID)), nil
}

func (r *memSlotRepo) CountByDepotAndState(depotID, state string) (int, error) {
	n := 0
	for _, sl := range r.s.slotsOfDepot(depotID) {
		if sl.State == state {
			n++
		}
	}
	return n, nil
}

// memPalletRepo

type memPalletRepo struct{ s *store }

var _ repository.PalletRepository = (*memPalletRepo)(nil)

func (r *memPalletRepo) Create(p *entity.Pallet) error {
	r.s.pallets[p.ID] = copyPallet(p)
	return nil
}

func (r *memPalletRepo) GetByID(id string) (*entity.Pallet, error) {
	p, ok := r.s.pallets[id]
	if !ok {
		return nil, nil
	}
	return copyPallet(p), nil
}

func (r *memPalletRepo) GetForUpdate(id string) (*entity.Pallet, error) {
	return r.GetByID(id)
}

func (r *memPalletRepo) SetSlot(id string, slotID *string) error {
	p, ok := r.s.pallets[id]
	if !ok {
		return fmt.Errorf("pallet %s no encontrado", id)
	}
	if slotID != nil {
		p.SlotID = strPtr(*slotID)
	} else {
		p.SlotID = nil
	}
	return nil
}

func (r *memPalletRepo) Deactivate(id string) error {
	p, ok := r.s.pallets[id]
	if !ok {
		return fmt.Errorf("pallet %s no encontrado", id)
	}
	now := time.Now()
	p.Active = false
	p.EgressAt = &now
	p.SlotID = nil
	return nil
}

func (r *memPalletRepo) Delete(id string) error {
	delete(r.s.pallets, id)
	return nil
}

func (r *memPalletRepo) ListActiveByClientAndDepot(clientID, depotID string) ([]*entity.Pallet, error) {
	var out []*entity.Pallet
	for _, p := range r.s.pallets {
		if !p.Active || p.SlotID == nil {
			continue
		}
		prod, ok := r.s.products[p.ProductID]
		if !ok || prod.ClientID != clientID {
			continue
		}
		sl, ok := r.s.slots[*p.SlotID]
		if !ok {
			continue
		}
		rack, ok := r.s.racks[sl.RackID]
		if !ok || rack.DepotID != depotID {
			continue
		}
		out = append(out, copyPallet(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IngressAt.After(out[j].IngressAt) })
	return out, nil
}

// memRemitoRepo

type memRemitoRepo struct{ s *store }

var _ repository.RemitoRepository = (*memRemitoRepo)(nil)

func (r *memRemitoRepo) Create(rem *entity.Remito) error {
	r.s.remitos[rem.ID] = copyRemito(rem)
	return nil
}

func (r *memRemitoRepo) CreateLine(line *entity.RemitoLine) error {
	rem, ok := r.s.remitos[line.RemitoID]
	if !ok {
		return fmt.Errorf("remito %s no encontrado", line.RemitoID)
	}
	lc := *line
	if line.PalletID != nil {
		lc.PalletID = strPtr(*line.PalletID)
	}
	rem.Lines = append(rem.Lines, &lc)
	return nil
}

func (r *memRemitoRepo) GetByID(id string) (*entity.Remito, error) {
	rem, ok := r.s.remitos[id]
	if !ok {
		return nil, nil
	}
	return copyRemito(rem), nil
}

func (r *memRemitoRepo) GetForUpdate(id string) (*entity.Remito, error) {
	return r.GetByID(id)
}

func (r *memRemitoRepo) SetState(id, state string, encargadoID *string) error {
	rem, ok := r.s.remitos[id]
	if !ok {
		return fmt.Errorf("remito %s no encontrado", id)
	}
	rem.State = state
	if encargadoID != nil {
		rem.EncargadoID = strPtr(*encargadoID)
	}
	return nil
}

func (r *memRemitoRepo) List(filter repository.RemitoFilter) ([]*entity.Remito, error) {
	var out []*entity.Remito
	for _, rem := range r.s.remitos {
		if filter.Type != "" && rem.Type != filter.Type {
			continue
		}
		if filter.ClientID != "" && rem.ClientID != filter.ClientID {
			continue
		}
		if filter.DepotID != "" && rem.DepotID != filter.DepotID {
			continue
		}
		if filter.State != "" && rem.State != filter.State {
			continue
		}
		out = append(out, copyRemito(rem))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memRemitoRepo) CountSince(from time.Time) (int, error) {
	n := 0
	for _, rem := range r.s.remitos {
		if !rem.Date.Before(from) {
			n++
		}
	}
	return n, nil
}

// memMovementRepo

type memMovementRepo struct{ s *store }

var _ repository.MovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(m *entity.Movement) error {
	v := *m
	r.s.movements = append(r.s.movements, &v)
	return nil
}

func (r *memMovementRepo) ListByDepot(depotID string, limit int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if depotID != "" {
			sl, ok := r.s.slots[m.FromSlotID]
			if !ok {
				continue
			}
			rack, ok := r.s.racks[sl.RackID]
			if !ok || rack.DepotID != depotID {
				continue
			}
		}
		v := *m
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// memClientRepo (lecturas fuera de transacción en validateHeader)

type memClientRepo struct{ s *store }

var _ repository.ClientRepository = (*memClientRepo)(nil)

func (r *memClientRepo) Create(c *entity.Client) error {
	v := *c
	r.s.clients[c.ID] = &v
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	v := *c
	return &v, nil
}

func (r *memClientRepo) Update(c *entity.Client) error {
	v := *c
	r.s.clients[c.ID] = &v
	return nil
}

func (r *memClientRepo) List() ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.s.clients {
		if c.Active {
			v := *c
			out = append(out, &v)
		}
	}
	return out, nil
}

func (r *memClientRepo) Deactivate(id string) error {
	if c, ok := r.s.clients[id]; ok {
		c.Active = false
	}
	return nil
}

func (r *memClientRepo) CountActive() (int, error) {
	n := 0
	for _, c := range r.s.clients {
		if c.Active {
			n++
		}
	}
	return n, nil
}
