package domain

import "testing"

func TestChoreStatus_Valid(t *testing.T) {
	for _, s := range []ChoreStatus{StatusPending, StatusCompleted, StatusUncompleted} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range []ChoreStatus{"", "DONE", "pending", "Completed"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleParent) || !ValidRole(RoleChild) {
		t.Fatal("expected PARENT and CHILD to be valid roles")
	}
	for _, r := range []string{"", "ADMIN", "parent"} {
		if ValidRole(r) {
			t.Fatalf("expected %q to be invalid", r)
		}
	}
}
