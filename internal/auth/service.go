package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/GameCatalog_Go/internal/domain"
	"github.com/osse101/GameCatalog_Go/internal/logger"
	"github.com/osse101/GameCatalog_Go/internal/metrics"
	"github.com/osse101/GameCatalog_Go/internal/repository"
)

// Service defines the interface for account registration and login
type Service interface {
	// Register creates a player account. Username and email conflicts are
	// reported with field-specific errors.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies credentials and returns the user plus a signed token.
	// Unknown usernames and wrong passwords return the same error.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}

// service implements the Service interface
type service struct {
	repo   repository.User
	tokens *TokenManager
}

// NewService creates an auth service
func NewService(repo repository.User, tokens *TokenManager) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Username == username {
			return nil, domain.ErrUsernameTaken
		}
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// New registrations always start as players; promotion is a manual
	// operation. The role row is looked up by name, never by a hardcoded ID.
	roleID, err := s.repo.RoleIDByName(ctx, domain.RoleNamePlayer)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
		Role:         domain.RolePlayer,
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		// The pre-check races with concurrent registrations; the unique
		// constraint is the authority.
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		log.Error("Failed to register user", "username", username, "error", err)
		return nil, err
	}
	user.ID = id

	metrics.UsersRegistered.Inc()
	log.Info("User registered", "id", id, "username", username)
	return user, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	log := logger.FromContext(ctx)

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.LoginFailures.Inc()
		log.Warn("Failed login attempt", "username", username)
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	log.Info("User logged in", "id", user.ID, "username", username)
	return user, token, nil
}
