package dto

type CreatePilotDTO struct {
	Name          string  `json:"name" validate:"required"`
	LicenseNumber *string `json:"license_number" validate:"omitempty"`
	Phone         *string `json:"phone" validate:"omitempty"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Status        string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdatePilotDTO struct {
	Name          *string `json:"name,omitempty" validate:"omitempty"`
	LicenseNumber *string `json:"license_number,omitempty" validate:"omitempty"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type PilotDTO struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	LicenseNumber *string `json:"license_number,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ShortPilotDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
