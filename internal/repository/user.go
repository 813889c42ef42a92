package repository

import (
	"context"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// User defines the interface for user persistence. Lookups expand the role
// so callers can build an Actor without a second query.
type User interface {
	Insert(ctx context.Context, user *domain.User) (int, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetByUsernameOrEmail returns any user holding either identifier,
	// letting registration report which field conflicts.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	// RoleIDByName resolves a role name to its stored ID, so callers never
	// depend on the order the roles table was seeded in.
	RoleIDByName(ctx context.Context, name string) (int, error)
}
