package entity

import "time"

// Movement representa una reubicación interna de un pallet entre dos
// ubicaciones del mismo depósito. Registro de auditoría inmutable: solo se
// agrega, nunca se modifica ni se elimina.
type Movement struct {
	ID         string
	PalletID   string
	FromSlotID string
	ToSlotID   string
	OperatorID string
	Reason     string
	Date       time.Time
}
