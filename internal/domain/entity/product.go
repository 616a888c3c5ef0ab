package entity

import "time"

// Product representa un producto de un cliente (mercadería de terceros).
// Soft delete vía Active: nunca se elimina físicamente mientras esté
// referenciado por remitos o movimientos históricos.
type Product struct {
	ID          string
	ClientID    string
	Code        string
	Description string
	UnitMeasure string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
