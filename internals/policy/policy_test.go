package policy_test

import (
	"testing"

	"filestorage_backend/internals/constants"
	"filestorage_backend/internals/policy"
)

func TestCanRead_AdminAndModeratorSeeEverything(t *testing.T) {
	for _, role := range []string{constants.RoleAdmin, constants.RoleModerator} {
		caller := policy.Caller{UserID: 1, Role: role}
		if policy.CanRead(caller, 99) != policy.Allow {
			t.Errorf("expected %s to read a row owned by another user", role)
		}
	}
}

func TestCanRead_UserOwnRowsOnly(t *testing.T) {
	caller := policy.Caller{UserID: 7, Role: constants.RoleUser}

	if policy.CanRead(caller, 7) != policy.Allow {
		t.Error("expected USER to read their own row")
	}
	if policy.CanRead(caller, 8) != policy.Deny {
		t.Error("expected USER to be denied for a row owned by another user")
	}
}

func TestCanMutate(t *testing.T) {
	cases := []struct {
		role string
		want policy.Decision
	}{
		{constants.RoleAdmin, policy.Allow},
		{constants.RoleModerator, policy.Allow},
		{constants.RoleUser, policy.Deny},
	}
	for _, tc := range cases {
		got := policy.CanMutate(policy.Caller{UserID: 1, Role: tc.role})
		if got != tc.want {
			t.Errorf("CanMutate(%s) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestCanMutate_OwnershipDoesNotGrantMutation(t *testing.T) {
	caller := policy.Caller{UserID: 7, Role: constants.RoleUser}
	if policy.CanMutate(caller) != policy.Deny {
		t.Error("expected USER to be denied mutation even on owned rows")
	}
}

func TestCanBulkDelete_AdminOnly(t *testing.T) {
	if policy.CanBulkDelete(policy.Caller{Role: constants.RoleAdmin}) != policy.Allow {
		t.Error("expected ADMIN to bulk delete")
	}
	for _, role := range []string{constants.RoleModerator, constants.RoleUser} {
		if policy.CanBulkDelete(policy.Caller{Role: role}) != policy.Deny {
			t.Errorf("expected %s to be denied bulk delete", role)
		}
	}
}

func TestScopeUserID(t *testing.T) {
	admin := policy.Caller{UserID: 1, Role: constants.RoleAdmin}
	if got := policy.ScopeUserID(admin, 5); got != 5 {
		t.Errorf("admin scope = %d, want requested filter 5", got)
	}
	if got := policy.ScopeUserID(admin, 0); got != 0 {
		t.Errorf("admin scope = %d, want unfiltered", got)
	}

	user := policy.Caller{UserID: 7, Role: constants.RoleUser}
	if got := policy.ScopeUserID(user, 5); got != 7 {
		t.Errorf("user scope = %d, want pinned to own id 7", got)
	}
	if got := policy.ScopeUserID(user, 0); got != 7 {
		t.Errorf("user scope = %d, want pinned to own id 7", got)
	}
}
