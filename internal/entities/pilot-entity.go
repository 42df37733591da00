package entities

import "fleet-system/pkg/types"

type Pilot struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	LicenseNumber *string `json:"license_number,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Status        string  `json:"status"`

	types.BaseEntity
}
