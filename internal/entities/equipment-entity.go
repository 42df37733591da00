package entities

import (
	"time"

	"fleet-system/pkg/types"
)

type Equipment struct {
	ID                 uint64     `json:"id"`
	SequenceNumber     uint64     `json:"sequence_number"`
	Name               string     `json:"name"`
	EquipmentType      string     `json:"equipment_type"`
	SerialNumber       *string    `json:"serial_number,omitempty"`
	SisantRegistration *string    `json:"sisant_registration,omitempty"`
	Manufacturer       *string    `json:"manufacturer,omitempty"`
	Model              *string    `json:"model,omitempty"`
	Status             string     `json:"status"`
	AcquisitionDate    *time.Time `json:"acquisition_date,omitempty"`
	Value              *float64   `json:"value,omitempty"`
	Location           *string    `json:"location,omitempty"`
	ResponsibleUser    *string    `json:"responsible_user,omitempty"`
	Observations       *string    `json:"observations,omitempty"`

	types.BaseEntity // CreatedAt, UpdatedAt
}
