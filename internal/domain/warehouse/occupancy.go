package warehouse

import "math"

// Occupancy es la foto de ocupación de un depósito, recalculada bajo demanda
// desde los estados actuales de las ubicaciones (nunca cacheada).
type Occupancy struct {
	Total      int `json:"total"`
	Occupied   int `json:"occupied"`
	Free       int `json:"free"`
	Percentage int `json:"percentage"`
}

// NewOccupancy arma la estadística a partir de los contadores por estado.
// Free cuenta solo las LIBRE (las RESERVADA no son ni libres ni ocupadas).
// El porcentaje se redondea al entero más cercano; 0 sin ubicaciones.
func NewOccupancy(total, occupied, free int) Occupancy {
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(occupied) / float64(total) * 100))
	}
	return Occupancy{
		Total:      total,
		Occupied:   occupied,
		Free:       free,
		Percentage: pct,
	}
}
