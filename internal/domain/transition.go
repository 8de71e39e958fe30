package domain

// TransitionAction действие над статусом бронирования
type TransitionAction string

const (
	ActionApprove  TransitionAction = "approve"
	ActionReject   TransitionAction = "reject"
	ActionCancel   TransitionAction = "cancel"
	ActionComplete TransitionAction = "complete"
)

// transitionRule правило перехода статусов
type transitionRule struct {
	from []BookingStatus
	to   BookingStatus
	// операция из таблицы прав; для cancel дополнительно разрешен владелец
	requiredOp Operation
	// фиксировать ли актора в approved_by
	recordsApprover bool
}

// transitionTable полная таблица переходов статусов
// Любая пара (текущий статус, действие), не попавшая в таблицу, недопустима
var transitionTable = map[TransitionAction]transitionRule{
	ActionApprove: {
		from:            []BookingStatus{StatusPending},
		to:              StatusApproved,
		requiredOp:      OpApproveBooking,
		recordsApprover: true,
	},
	ActionReject: {
		from:            []BookingStatus{StatusPending},
		to:              StatusRejected,
		requiredOp:      OpRejectBooking,
		recordsApprover: true,
	},
	ActionCancel: {
		from:       []BookingStatus{StatusPending, StatusApproved},
		to:         StatusCancelled,
		requiredOp: OpCancelAnyBooking,
	},
	ActionComplete: {
		from:       []BookingStatus{StatusApproved},
		to:         StatusCompleted,
		requiredOp: OpCompleteBooking,
	},
}

// IsValid проверяет, что действие известно системе
func (a TransitionAction) IsValid() bool {
	_, ok := transitionTable[a]
	return ok
}

// TargetStatus возвращает статус, в который переводит действие
func (a TransitionAction) TargetStatus() BookingStatus {
	return transitionTable[a].to
}

// RequiredOperation возвращает операцию из таблицы прав для действия
func (a TransitionAction) RequiredOperation() Operation {
	return transitionTable[a].requiredOp
}

// RecordsApprover возвращает true, если действие фиксирует актора в approved_by
func (a TransitionAction) RecordsApprover() bool {
	return transitionTable[a].recordsApprover
}

// AllowsOwner возвращает true, если действие разрешено владельцу бронирования
// независимо от роли (только отмена)
func (a TransitionAction) AllowsOwner() bool {
	return a == ActionCancel
}

// CanTransitionFrom проверяет предусловие действия: текущий статус должен
// входить в список допустимых исходных статусов
func (a TransitionAction) CanTransitionFrom(current BookingStatus) bool {
	rule, ok := transitionTable[a]
	if !ok {
		return false
	}
	for _, s := range rule.from {
		if s == current {
			return true
		}
	}
	return false
}
