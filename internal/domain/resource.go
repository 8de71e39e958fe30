package domain

// ResourceType вид бронируемого ресурса
type ResourceType string

const (
	ResourceEquipment ResourceType = "EQUIPMENT"
	ResourceWorkspace ResourceType = "WORKSPACE"
)

// IsValid проверяет, что вид ресурса известен системе
func (rt ResourceType) IsValid() bool {
	return rt == ResourceEquipment || rt == ResourceWorkspace
}

// Lab идентификатор лаборатории
type Lab string

const (
	LabIVE     Lab = "IVE"
	LabCezeri  Lab = "CEZERI"
	LabMedTech Lab = "MEDTECH"
)

// EquipmentStatus статус оборудования в resource directory
type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentInUse       EquipmentStatus = "IN_USE"
	EquipmentMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentShared      EquipmentStatus = "SHARED"
)

// IsBookable возвращает true, если оборудование можно бронировать
// Оборудование в использовании остается бронируемым: бронь относится
// к будущему слоту, а не к текущему моменту
func (s EquipmentStatus) IsBookable() bool {
	return s == EquipmentAvailable || s == EquipmentInUse
}
