package domain

// Role роль пользователя в user directory
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleLabManager Role = "LAB_MANAGER"
	RoleTechnician Role = "TECHNICIAN"
	RoleStudent    Role = "STUDENT"
)

// Operation операция над бронированиями и слотами, требующая прав
type Operation string

const (
	OpApproveBooking   Operation = "approve_booking"
	OpRejectBooking    Operation = "reject_booking"
	OpCancelAnyBooking Operation = "cancel_any_booking"
	OpCompleteBooking  Operation = "complete_booking"
	OpCreateSlot       Operation = "create_slot"
	OpViewAllBookings  Operation = "view_all_bookings"
	OpViewLabBookings  Operation = "view_lab_bookings"
)

// roleCapabilities набор операций, разрешенных каждой роли
// Единая таблица прав вместо дублирования проверок по ролям в каждом действии
var roleCapabilities = map[Role]map[Operation]struct{}{
	RoleAdmin: {
		OpApproveBooking:   {},
		OpRejectBooking:    {},
		OpCancelAnyBooking: {},
		OpCompleteBooking:  {},
		OpCreateSlot:       {},
		OpViewAllBookings:  {},
		OpViewLabBookings:  {},
	},
	RoleLabManager: {
		OpApproveBooking:   {},
		OpRejectBooking:    {},
		OpCancelAnyBooking: {},
		OpCompleteBooking:  {},
		OpCreateSlot:       {},
		OpViewAllBookings:  {},
		OpViewLabBookings:  {},
	},
	RoleTechnician: {
		OpApproveBooking:  {},
		OpRejectBooking:   {},
		OpCompleteBooking: {},
		OpViewLabBookings: {},
	},
	RoleStudent: {},
}

// Can проверяет, разрешена ли роли указанная операция
func (r Role) Can(op Operation) bool {
	caps, ok := roleCapabilities[r]
	if !ok {
		return false
	}
	_, ok = caps[op]
	return ok
}

// IsValid проверяет, что роль известна системе
func (r Role) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}
