package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionAction_IsValid(t *testing.T) {
	assert.True(t, ActionApprove.IsValid())
	assert.True(t, ActionReject.IsValid())
	assert.True(t, ActionCancel.IsValid())
	assert.True(t, ActionComplete.IsValid())

	assert.False(t, TransitionAction("archive").IsValid())
	assert.False(t, TransitionAction("").IsValid())
}

func TestTransitionAction_TargetStatus(t *testing.T) {
	assert.Equal(t, StatusApproved, ActionApprove.TargetStatus())
	assert.Equal(t, StatusRejected, ActionReject.TargetStatus())
	assert.Equal(t, StatusCancelled, ActionCancel.TargetStatus())
	assert.Equal(t, StatusCompleted, ActionComplete.TargetStatus())
}

func TestTransitionAction_CanTransitionFrom(t *testing.T) {
	allStatuses := []BookingStatus{
		StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted,
	}

	// Полная матрица (действие, текущий статус) -> допустимость
	allowed := map[TransitionAction]map[BookingStatus]bool{
		ActionApprove:  {StatusPending: true},
		ActionReject:   {StatusPending: true},
		ActionCancel:   {StatusPending: true, StatusApproved: true},
		ActionComplete: {StatusApproved: true},
	}

	for action, fromStatuses := range allowed {
		for _, status := range allStatuses {
			got := action.CanTransitionFrom(status)
			want := fromStatuses[status]
			assert.Equal(t, want, got, "action=%s, from=%s", action, status)
		}
	}
}

func TestTransitionAction_CanTransitionFrom_UnknownAction(t *testing.T) {
	require.False(t, TransitionAction("archive").CanTransitionFrom(StatusPending))
}

func TestTransitionAction_RecordsApprover(t *testing.T) {
	// Только approve и reject фиксируют актора в approved_by
	assert.True(t, ActionApprove.RecordsApprover())
	assert.True(t, ActionReject.RecordsApprover())
	assert.False(t, ActionCancel.RecordsApprover())
	assert.False(t, ActionComplete.RecordsApprover())
}

func TestTransitionAction_AllowsOwner(t *testing.T) {
	// Владелец вправе только отменять собственные бронирования
	assert.True(t, ActionCancel.AllowsOwner())
	assert.False(t, ActionApprove.AllowsOwner())
	assert.False(t, ActionReject.AllowsOwner())
	assert.False(t, ActionComplete.AllowsOwner())
}

func TestTerminalStatusesAcceptNoAction(t *testing.T) {
	actions := []TransitionAction{ActionApprove, ActionReject, ActionCancel, ActionComplete}

	for _, terminal := range TerminalStatuses {
		for _, action := range actions {
			assert.False(t, action.CanTransitionFrom(terminal),
				"terminal status %s must not accept %s", terminal, action)
		}
	}
}
