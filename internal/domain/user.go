package domain

import "time"

// Role is the enumerated access level of a user. Compared by value
// everywhere; never compare role names as strings.
type Role int

const (
	RoleUnknown Role = iota
	RolePlayer
	RoleAdmin
)

// Role name constants as persisted in the roles table.
const (
	RoleNamePlayer = "Player"
	RoleNameAdmin  = "Admin"
)

// ParseRole maps a stored role name to the enumerated value. Unrecognized
// names map to RoleUnknown, which fails closed in access checks.
func ParseRole(name string) Role {
	switch name {
	case RoleNamePlayer:
		return RolePlayer
	case RoleNameAdmin:
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return RoleNamePlayer
	case RoleAdmin:
		return RoleNameAdmin
	default:
		return "Unknown"
	}
}

// User is a registered account. PasswordHash never serializes.
type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	RoleID       int       `json:"roleid" db:"role_id"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Actor is the authenticated principal attached to a request.
type Actor struct {
	UserID   int
	Username string
	Role     Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
