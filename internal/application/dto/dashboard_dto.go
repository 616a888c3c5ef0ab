package dto

// DepotOccupancyDTO ocupación de un depósito para el dashboard.
type DepotOccupancyDTO struct {
	DepotID    string `json:"depot_id"`
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Occupied   int    `json:"occupied"`
	Percentage int    `json:"percentage"`
}

// DashboardResponse resumen general: totales y ocupación por depósito.
type DashboardResponse struct {
	Depots      int                 `json:"depots"`
	Clients     int                 `json:"clients"`
	Products    int                 `json:"products"`
	RemitosHoy  int                 `json:"remitos_today"`
	Occupancies []DepotOccupancyDTO `json:"occupancies"`
}
