package entities

import "time"

// EquipmentAccessory é a linha de junção acessório↔equipamento.
// Exatamente uma das FKs é preenchida, conforme AccessoryType.
type EquipmentAccessory struct {
	ID                   uint64  `json:"id"`
	ParentEquipmentID    uint64  `json:"parent_equipment_id"`
	AccessoryType        string  `json:"accessory_type"`
	AccessoryCatalogID   *uint64 `json:"accessory_catalog_id,omitempty"`
	AccessoryEquipmentID *uint64 `json:"accessory_equipment_id,omitempty"`
	Quantity             int     `json:"quantity"`
	Notes                *string `json:"notes,omitempty"`

	CreatedAt *time.Time `json:"created_at"`

	// Dados resolvidos para exibição (não são colunas da tabela)
	CatalogEntry    *AccessoryCatalog `json:"catalog_entry,omitempty"`
	TargetEquipment *Equipment        `json:"target_equipment,omitempty"`
}
