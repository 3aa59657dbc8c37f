package models

import "testing"

func TestComputeStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status ComputeStatus
		want   bool
	}{
		{ComputeInitial, false},
		{ComputePending, false},
		{ComputeComputing, false},
		{ComputeCompleted, true},
		{ComputeFailed, true},
		{ComputeCancelled, true},
	}
	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestAccountRoleAtLeast(t *testing.T) {
	tests := []struct {
		role AccountRole
		min  AccountRole
		want bool
	}{
		{RoleAdmin, RoleNormal, true},
		{RoleManager, RoleNormal, true},
		{RoleNormal, RoleNormal, true},
		{RoleGuest, RoleNormal, false},
		{RoleJustView, RoleNormal, false},
		{RoleJustView, RoleJustView, true},
		{RoleGuest, RoleManager, false},
		{AccountRole("unknown"), RoleJustView, true}, // unknown ranks with the floor
		{AccountRole("unknown"), RoleGuest, false},
	}
	for _, tt := range tests {
		if got := tt.role.AtLeast(tt.min); got != tt.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", tt.role, tt.min, got, tt.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []AccountRole{RoleAdmin, RoleManager, RoleNormal, RoleGuest, RoleJustView} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%s) = false", role)
		}
	}
	if ValidRole(AccountRole("superuser")) {
		t.Error("ValidRole(superuser) = true")
	}
}
