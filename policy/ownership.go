// Package policy holds the pure authorization and intake rules shared by the
// content controllers. Nothing here touches the database or the request.
package policy

import "github.com/vntour/tourismweb/models"

// Actor is the authenticated identity performing a request. A zero Actor
// (no resolvable identity) is denied by every rule.
type Actor struct {
	ID       uint
	Username string
	Role     string
}

// IsAdmin reports whether the actor carries the Admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// CanMutate decides whether the actor may edit or delete content owned by
// ownerID. With allowAdminOverride the Admin role bypasses ownership; reviews
// pass false here because only their owner may touch them, while comment
// deletion and report management pass true.
func CanMutate(actor Actor, ownerID uint, allowAdminOverride bool) bool {
	if actor.ID == 0 {
		return false
	}
	if actor.ID == ownerID {
		return true
	}
	return allowAdminOverride && actor.IsAdmin()
}
