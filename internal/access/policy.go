// Package access decides whether an actor may operate on another user's
// resources. It is the single trust boundary for user-scoped operations:
// the catalog orchestrator evaluates it once before any inventory call, and
// the inventory service never re-checks.
package access

import "github.com/osse101/GameCatalog_Go/internal/domain"

// Policy is the owner-or-admin access rule.
type Policy struct{}

// NewPolicy creates a Policy.
func NewPolicy() Policy { return Policy{} }

// CheckUserScope returns nil when the actor may operate on resources scoped
// to subjectUserID: the actor owns them or holds the admin role. Any other
// actor gets ErrForbidden, which deliberately carries no resource detail.
func (Policy) CheckUserScope(actor domain.Actor, subjectUserID int) error {
	if actor.UserID == subjectUserID || actor.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}
