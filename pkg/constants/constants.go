package constants

//============== TIPOS DE EQUIPAMENTO ==============

// Valores válidos da coluna equipments.equipment_type.
const (
	EquipmentTypeDrone     = "drone"
	EquipmentTypeBattery   = "battery"
	EquipmentTypePropeller = "propeller"
	EquipmentTypeCamera    = "camera"
	EquipmentTypeGimbal    = "gimbal"
	EquipmentTypeCharger   = "charger"
	EquipmentTypeCase      = "case"
	EquipmentTypeRemote    = "remote"
	EquipmentTypeSensor    = "sensor"
	EquipmentTypeOther     = "other"
)

//============== STATUS DE EQUIPAMENTO ==============

const (
	EquipmentStatusActive      = "active"
	EquipmentStatusInactive    = "inactive"
	EquipmentStatusMaintenance = "maintenance"
)

//============== STATUS DE PILOTO ==============

const (
	PilotStatusActive   = "active"
	PilotStatusInactive = "inactive"
)

//============== TIPOS DE ACESSÓRIO ==============

// Variantes do vínculo equipamento↔acessório. Exatamente uma das FKs
// (accessory_catalog_id / accessory_equipment_id) é preenchida conforme o tipo.
const (
	AccessoryTypeCatalog   = "catalog"
	AccessoryTypeEquipment = "equipment"
)

//============== PAPÉIS DE USUÁRIO ==============

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

//============== CACHE KEYS ==============

// Prefixos de chaves no Redis.
const (
	// Papel do usuário para a checagem de visibilidade do histórico.
	// Formato: user_role:<userID> -> role
	CacheKeyUserRole = "user_role:%d"
)
