package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidState       = errors.New("transición ilegal desde el estado actual")
	ErrPalletNotAvailable = errors.New("pallet inactivo o sin ubicación")
	ErrSlotNotAvailable   = errors.New("ubicación no disponible")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
