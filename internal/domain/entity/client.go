package entity

import "time"

// Client representa una empresa cliente del depósito (dueña de la mercadería).
type Client struct {
	ID        string
	LegalName string
	TaxID     string // CUIT
	Contact   string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
