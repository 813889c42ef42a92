package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.User
// for integration-style unit tests.
type FakeRepository struct {
	users   map[int]*domain.User
	roleIDs map[string]int
	nextID  int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		users: make(map[int]*domain.User),
		roleIDs: map[string]int{
			domain.RoleNameAdmin:  1,
			domain.RoleNamePlayer: 2,
		},
		nextID: 1,
	}
}

// SeedRole overrides the stored ID of a role
func (f *FakeRepository) SeedRole(name string, id int) {
	f.roleIDs[name] = id
}

// Seed inserts a user with an explicit ID, bumping the ID counter
func (f *FakeRepository) Seed(user domain.User) {
	f.users[user.ID] = &user
	if user.ID >= f.nextID {
		f.nextID = user.ID + 1
	}
}

func (f *FakeRepository) Insert(ctx context.Context, user *domain.User) (int, error) {
	for _, u := range f.users {
		if u.Username == user.Username {
			return 0, domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return 0, domain.ErrEmailTaken
		}
	}
	id := f.nextID
	f.nextID++
	stored := *user
	stored.ID = id
	stored.CreatedAt = time.Now()
	f.users[id] = &stored
	return id, nil
}

func (f *FakeRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cc := *user
	return &cc, nil
}

func (f *FakeRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cc := *u
			return &cc, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) RoleIDByName(ctx context.Context, name string) (int, error) {
	id, ok := f.roleIDs[name]
	if !ok {
		return 0, fmt.Errorf("role %q is not seeded", name)
	}
	return id, nil
}

func (f *FakeRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			cc := *u
			return &cc, nil
		}
	}
	return nil, nil
}
