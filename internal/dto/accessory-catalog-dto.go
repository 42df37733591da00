package dto

type CreateAccessoryCatalogDTO struct {
	Brand              string   `json:"brand" validate:"required"`
	Category           string   `json:"category" validate:"required"`
	Subcategory        *string  `json:"subcategory" validate:"omitempty"`
	Name               string   `json:"name" validate:"required"`
	Description        *string  `json:"description" validate:"omitempty"`
	ModelCompatibility []string `json:"model_compatibility" validate:"omitempty,dive,min=1"`
}

type AccessoryCatalogDTO struct {
	ID                 uint64   `json:"id"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Subcategory        *string  `json:"subcategory,omitempty"`
	Name               string   `json:"name"`
	Description        *string  `json:"description,omitempty"`
	ModelCompatibility []string `json:"model_compatibility,omitempty"`
}

// AccessoryCatalogListDTO agrupa o catálogo de uma marca: entradas já
// filtradas por compatibilidade e as categorias distintas na ordem de
// primeira aparição.
type AccessoryCatalogListDTO struct {
	Brand      string                `json:"brand"`
	Categories []string              `json:"categories"`
	Entries    []AccessoryCatalogDTO `json:"entries"`
}

type ShortAccessoryCatalogDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Subcategory *string `json:"subcategory,omitempty"`
}
