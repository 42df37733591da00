package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name               string       `json:"name" validate:"required"`
	EquipmentType      string       `json:"equipment_type" validate:"required,equipment_type"`
	SerialNumber       *string      `json:"serial_number" validate:"omitempty"`
	SisantRegistration *string      `json:"sisant_registration" validate:"omitempty,sisant"`
	Manufacturer       *string      `json:"manufacturer" validate:"omitempty"`
	Model              *string      `json:"model" validate:"omitempty"`
	Status             string       `json:"status" validate:"omitempty,equipment_status"`
	AcquisitionDate    *string      `json:"acquisition_date" validate:"omitempty,datetime=2006-01-02"`
	Value              null.Float64 `json:"value"`
	Location           *string      `json:"location" validate:"omitempty"`
	ResponsibleUser    *string      `json:"responsible_user" validate:"omitempty"`
	Observations       *string      `json:"observations" validate:"omitempty"`
}

type UpdateEquipmentDTO struct {
	Name               *string      `json:"name,omitempty" validate:"omitempty"`
	EquipmentType      *string      `json:"equipment_type,omitempty" validate:"omitempty,equipment_type"`
	SerialNumber       *string      `json:"serial_number,omitempty" validate:"omitempty"`
	SisantRegistration *string      `json:"sisant_registration,omitempty" validate:"omitempty,sisant"`
	Manufacturer       *string      `json:"manufacturer,omitempty" validate:"omitempty"`
	Model              *string      `json:"model,omitempty" validate:"omitempty"`
	Status             *string      `json:"status,omitempty" validate:"omitempty,equipment_status"`
	AcquisitionDate    *string      `json:"acquisition_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Value              null.Float64 `json:"value,omitempty"`
	Location           *string      `json:"location,omitempty" validate:"omitempty"`
	ResponsibleUser    *string      `json:"responsible_user,omitempty" validate:"omitempty"`
	Observations       *string      `json:"observations,omitempty" validate:"omitempty"`
}

type EquipmentDTO struct {
	ID                 uint64       `json:"id"`
	SequenceNumber     uint64       `json:"sequence_number"`
	SequenceDisplay    string       `json:"sequence_display"`
	Name               string       `json:"name"`
	EquipmentType      string       `json:"equipment_type"`
	SerialNumber       *string      `json:"serial_number,omitempty"`
	SisantRegistration *string      `json:"sisant_registration,omitempty"`
	Manufacturer       *string      `json:"manufacturer,omitempty"`
	Model              *string      `json:"model,omitempty"`
	Status             string       `json:"status"`
	AcquisitionDate    *string      `json:"acquisition_date,omitempty"`
	Value              null.Float64 `json:"value,omitempty"`
	Location           *string      `json:"location,omitempty"`
	ResponsibleUser    *string      `json:"responsible_user,omitempty"`
	Observations       *string      `json:"observations,omitempty"`
	CreatedAt          string       `json:"created_at"`
	UpdatedAt          string       `json:"updated_at"`
}

type ShortEquipmentDTO struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	EquipmentType string  `json:"equipment_type"`
	SerialNumber  *string `json:"serial_number,omitempty"`
	Model         *string `json:"model,omitempty"`
	Status        string  `json:"status"`
}
