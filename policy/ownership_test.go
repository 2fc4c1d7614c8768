package policy

import (
	"testing"

	"github.com/vntour/tourismweb/models"
)

func TestCanMutate(t *testing.T) {
	owner := Actor{ID: 7, Username: "mai", Role: models.RoleUser}
	stranger := Actor{ID: 9, Username: "binh", Role: models.RoleUser}
	admin := Actor{ID: 3, Username: "ops", Role: models.RoleAdmin}
	adminOwner := Actor{ID: 7, Username: "ops2", Role: models.RoleAdmin}

	const ownerID = 7

	tests := []struct {
		name     string
		actor    Actor
		override bool
		want     bool
	}{
		{name: "owner without override", actor: owner, override: false, want: true},
		{name: "owner with override", actor: owner, override: true, want: true},
		{name: "stranger without override", actor: stranger, override: false, want: false},
		{name: "stranger with override", actor: stranger, override: true, want: false},
		{name: "admin without override", actor: admin, override: false, want: false},
		{name: "admin with override", actor: admin, override: true, want: true},
		{name: "owning admin without override", actor: adminOwner, override: false, want: true},
		{name: "owning admin with override", actor: adminOwner, override: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanMutate(tt.actor, ownerID, tt.override)
			if got != tt.want {
				t.Fatalf("CanMutate(%+v, %d, %v) = %v, want %v", tt.actor, ownerID, tt.override, got, tt.want)
			}
		})
	}
}

func TestCanMutateUnauthenticated(t *testing.T) {
	// A zero actor must be denied even with the override and even against
	// owner id zero.
	var anon Actor
	if CanMutate(anon, 0, true) {
		t.Fatal("unauthenticated actor must never pass the mutation policy")
	}
	if CanMutate(anon, 5, true) {
		t.Fatal("unauthenticated actor must never pass the mutation policy")
	}
}
