package dto

// CreateEquipmentAccessoryDTO é a seleção etiquetada do formulário de
// vínculo. Conforme AccessoryType:
//   - "catalog": AccessoryCatalogID OU (CustomName + CustomCategory)
//   - "equipment": AccessoryEquipmentID
type CreateEquipmentAccessoryDTO struct {
	AccessoryType        string  `json:"accessory_type" validate:"required,oneof=catalog equipment"`
	AccessoryCatalogID   *uint64 `json:"accessory_catalog_id" validate:"omitempty,gt=0"`
	AccessoryEquipmentID *uint64 `json:"accessory_equipment_id" validate:"omitempty,gt=0"`
	CustomName           *string `json:"custom_name" validate:"omitempty,min=1"`
	CustomCategory       *string `json:"custom_category" validate:"omitempty,min=1"`
	CustomBrand          *string `json:"custom_brand" validate:"omitempty,min=1"`
	Quantity             int     `json:"quantity" validate:"required,gte=1"`
	Notes                *string `json:"notes" validate:"omitempty"`
}

type EquipmentAccessoryDTO struct {
	ID            uint64  `json:"id"`
	AccessoryType string  `json:"accessory_type"`
	Quantity      int     `json:"quantity"`
	Notes         *string `json:"notes,omitempty"`

	CatalogEntry    *ShortAccessoryCatalogDTO `json:"catalog_entry,omitempty"`
	TargetEquipment *ShortEquipmentDTO        `json:"target_equipment,omitempty"`
}
