package entities

import "time"

// EquipmentHistory é o snapshot imutável gravado na exclusão de um
// equipamento. Nunca é removido pela aplicação.
type EquipmentHistory struct {
	ID                  uint64     `json:"id"`
	OriginalEquipmentID uint64     `json:"original_equipment_id"`
	SequenceNumber      uint64     `json:"sequence_number"`
	Name                string     `json:"name"`
	EquipmentType       string     `json:"equipment_type"`
	SerialNumber        *string    `json:"serial_number,omitempty"`
	SisantRegistration  *string    `json:"sisant_registration,omitempty"`
	Manufacturer        *string    `json:"manufacturer,omitempty"`
	Model               *string    `json:"model,omitempty"`
	Status              *string    `json:"status,omitempty"`
	AcquisitionDate     *time.Time `json:"acquisition_date,omitempty"`
	Value               *float64   `json:"value,omitempty"`
	Location            *string    `json:"location,omitempty"`
	ResponsibleUser     *string    `json:"responsible_user,omitempty"`
	Observations        *string    `json:"observations,omitempty"`
	DeletedAt           time.Time  `json:"deleted_at"`
	DeletedBy           *string    `json:"deleted_by,omitempty"`
}
