package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Can(t *testing.T) {
	managerial := []Operation{
		OpApproveBooking, OpRejectBooking, OpCancelAnyBooking,
		OpCompleteBooking, OpCreateSlot, OpViewAllBookings, OpViewLabBookings,
	}

	// ADMIN и LAB_MANAGER могут все
	for _, role := range []Role{RoleAdmin, RoleLabManager} {
		for _, op := range managerial {
			assert.True(t, role.Can(op), "role=%s, op=%s", role, op)
		}
	}

	// TECHNICIAN: решения по заявкам в своей лаборатории, но без отмены чужих,
	// создания слотов и полного обзора
	assert.True(t, RoleTechnician.Can(OpApproveBooking))
	assert.True(t, RoleTechnician.Can(OpRejectBooking))
	assert.True(t, RoleTechnician.Can(OpCompleteBooking))
	assert.True(t, RoleTechnician.Can(OpViewLabBookings))
	assert.False(t, RoleTechnician.Can(OpCancelAnyBooking))
	assert.False(t, RoleTechnician.Can(OpCreateSlot))
	assert.False(t, RoleTechnician.Can(OpViewAllBookings))

	// STUDENT не имеет привилегированных операций
	for _, op := range managerial {
		assert.False(t, RoleStudent.Can(op), "op=%s", op)
	}
}

func TestRole_Can_UnknownRole(t *testing.T) {
	assert.False(t, Role("GUEST").Can(OpApproveBooking))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleLabManager.IsValid())
	assert.True(t, RoleTechnician.IsValid())
	assert.True(t, RoleStudent.IsValid())
	assert.False(t, Role("GUEST").IsValid())
	assert.False(t, Role("").IsValid())
}
