package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userSelect = `
	SELECT u.id, u.username, u.email, u.password_hash, u.role_id, r.name,
	       u.created_at, u.updated_at
	FROM users u
	JOIN roles r ON r.id = u.role_id
`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var roleName string
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RoleID, &roleName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = domain.ParseRole(roleName)
	return &u, nil
}

// Insert creates a user and returns its generated ID. Unique violations map
// to field-identified conflict errors.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (int, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.RoleID).Scan(&id)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if strings.Contains(constraint, "email") {
				return 0, domain.ErrEmailTaken
			}
			return 0, domain.ErrUsernameTaken
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

// GetByID returns a user with the role expanded
func (r *UserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetByUsername returns a user with the role expanded
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, userSelect+` WHERE u.username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// RoleIDByName resolves a role name to its stored ID
func (r *UserRepository) RoleIDByName(ctx context.Context, name string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("role %q is not seeded", name)
		}
		return 0, fmt.Errorf("failed to resolve role id: %w", err)
	}
	return id, nil
}

// GetByUsernameOrEmail returns any user holding either identifier, or
// (nil, nil) when both are free.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, userSelect+` WHERE u.username = $1 OR u.email = $2 LIMIT 1`, username, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username or email: %w", err)
	}
	return user, nil
}
