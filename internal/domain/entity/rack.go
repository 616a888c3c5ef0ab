package entity

import "time"

// Límites de dimensiones de rack (política operativa, validada al crear).
const (
	RackMaxRows    = 10
	RackMaxColumns = 20
	RackMaxDepth   = 10
)

// Rack representa una estantería dentro de un depósito, grillada en ubicaciones
// filas × columnas × profundidad. Inmutable una vez creado (sin resize);
// eliminable solo si ninguna de sus ubicaciones está ocupada.
type Rack struct {
	ID        string
	DepotID   string
	Code      string
	Rows      int
	Columns   int
	Depth     int
	CreatedAt time.Time
}
