package entity

import "time"

// Depot representa un depósito físico (sitio de almacenamiento).
// TotalCapacity es derivado: cantidad de ubicaciones de todos sus racks.
// Solo se recalcula al crear o eliminar racks, nunca se setea a mano.
type Depot struct {
	ID            string
	Name          string
	Address       string
	TotalCapacity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
