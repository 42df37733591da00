package entities

import (
	"time"

	"fleet-system/pkg/types"
)

type FlightSession struct {
	ID              uint64    `json:"id"`
	ProjectName     string    `json:"project_name"`
	PilotID         uint64    `json:"pilot_id"`
	EquipmentID     *uint64   `json:"equipment_id,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	FlightDate      time.Time `json:"flight_date"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Observations    *string   `json:"observations,omitempty"`

	types.BaseEntity

	// Campos resolvidos para exibição (não são colunas da tabela)
	Pilot     *Pilot     `json:"pilot,omitempty" db:"-"`
	Equipment *Equipment `json:"equipment,omitempty" db:"-"`
}
