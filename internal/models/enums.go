package models

// Status is the soft-delete lifecycle shared by every entity.
type Status string

const (
	StatusInactive Status = "inactive"
	StatusActive   Status = "active"
	StatusDeleted  Status = "deleted"
)

// ComputeStatus tracks a route-computation job. completed, failed and
// cancelled are terminal; no transition is defined out of them.
type ComputeStatus string

const (
	ComputeInitial   ComputeStatus = "initial"
	ComputePending   ComputeStatus = "pending"
	ComputeComputing ComputeStatus = "computing"
	ComputeCompleted ComputeStatus = "completed"
	ComputeFailed    ComputeStatus = "failed"
	ComputeCancelled ComputeStatus = "cancelled"
)

// TerminalComputeStatuses lists the states a compute can never leave.
var TerminalComputeStatuses = []ComputeStatus{
	ComputeCompleted,
	ComputeFailed,
	ComputeCancelled,
}

// IsTerminal reports whether the status admits no further transition.
func (s ComputeStatus) IsTerminal() bool {
	for _, t := range TerminalComputeStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// AccountRole orders account permissions. guest and just_view are read-only.
type AccountRole string

const (
	RoleAdmin    AccountRole = "admin"
	RoleManager  AccountRole = "manager"
	RoleNormal   AccountRole = "normal"
	RoleGuest    AccountRole = "guest"
	RoleJustView AccountRole = "just_view"
)

var roleRank = map[AccountRole]int{
	RoleJustView: 0,
	RoleGuest:    1,
	RoleNormal:   2,
	RoleManager:  3,
	RoleAdmin:    4,
}

// AtLeast reports whether r grants everything min grants.
// Unknown roles rank with just_view, the read-only floor.
func (r AccountRole) AtLeast(min AccountRole) bool {
	return roleRank[r] >= roleRank[min]
}

// ValidRole reports whether r is one of the defined account roles.
func ValidRole(r AccountRole) bool {
	_, ok := roleRank[r]
	return ok
}
