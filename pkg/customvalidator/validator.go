package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"fleet-system/pkg/constants"
)

// RegisterCustomValidations registra as regras de validação específicas
// do domínio no validador recebido.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("sisant", isSisantRegistration); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_type", isEquipmentType); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isEquipmentStatus); err != nil {
		return err
	}
	return nil
}

// Registro SISANT da ANAC: prefixo de duas letras, hífen e nove dígitos.
// Ex.: PP-123456789
var sisantRegex = regexp.MustCompile(`^[A-Z]{2}-\d{9}$`)

func isSisantRegistration(fl validator.FieldLevel) bool {
	return sisantRegex.MatchString(fl.Field().String())
}

func isEquipmentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.EquipmentTypeDrone,
		constants.EquipmentTypeBattery,
		constants.EquipmentTypePropeller,
		constants.EquipmentTypeCamera,
		constants.EquipmentTypeGimbal,
		constants.EquipmentTypeCharger,
		constants.EquipmentTypeCase,
		constants.EquipmentTypeRemote,
		constants.EquipmentTypeSensor,
		constants.EquipmentTypeOther:
		return true
	}
	return false
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.EquipmentStatusActive,
		constants.EquipmentStatusInactive,
		constants.EquipmentStatusMaintenance:
		return true
	}
	return false
}
