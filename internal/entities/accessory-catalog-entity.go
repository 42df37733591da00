package entities

import (
	"fleet-system/pkg/types"
)

type AccessoryCatalog struct {
	ID                 uint64   `json:"id"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Subcategory        *string  `json:"subcategory,omitempty"`
	Name               string   `json:"name"`
	Description        *string  `json:"description,omitempty"`
	ModelCompatibility []string `json:"model_compatibility,omitempty"`

	types.BaseEntity
}
