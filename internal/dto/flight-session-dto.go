package dto

import "github.com/aarondl/null/v8"

type CreateFlightSessionDTO struct {
	ProjectName     string       `json:"project_name" validate:"required"`
	PilotID         uint64       `json:"pilot_id" validate:"required,gt=0"`
	EquipmentID     *uint64      `json:"equipment_id" validate:"omitempty,gt=0"`
	Location        *string      `json:"location" validate:"omitempty"`
	Latitude        null.Float64 `json:"latitude"`
	Longitude       null.Float64 `json:"longitude"`
	FlightDate      string       `json:"flight_date" validate:"required,datetime=2006-01-02"`
	DurationMinutes null.Int     `json:"duration_minutes"`
	Observations    *string      `json:"observations" validate:"omitempty"`
}

type UpdateFlightSessionDTO struct {
	ProjectName     *string      `json:"project_name,omitempty" validate:"omitempty"`
	PilotID         *uint64      `json:"pilot_id,omitempty" validate:"omitempty,gt=0"`
	EquipmentID     *uint64      `json:"equipment_id,omitempty" validate:"omitempty,gt=0"`
	Location        *string      `json:"location,omitempty" validate:"omitempty"`
	Latitude        null.Float64 `json:"latitude,omitempty"`
	Longitude       null.Float64 `json:"longitude,omitempty"`
	FlightDate      *string      `json:"flight_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationMinutes null.Int     `json:"duration_minutes,omitempty"`
	Observations    *string      `json:"observations,omitempty" validate:"omitempty"`
}

type FlightSessionDTO struct {
	ID              uint64       `json:"id"`
	ProjectName     string       `json:"project_name"`
	Location        *string      `json:"location,omitempty"`
	Latitude        null.Float64 `json:"latitude,omitempty"`
	Longitude       null.Float64 `json:"longitude,omitempty"`
	FlightDate      string       `json:"flight_date"`
	DurationMinutes null.Int     `json:"duration_minutes,omitempty"`
	Observations    *string      `json:"observations,omitempty"`

	Pilot     ShortPilotDTO      `json:"pilot"`
	Equipment *ShortEquipmentDTO `json:"equipment,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
