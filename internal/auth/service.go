package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bannerhub/bannerhub/internal/shared"
)

// DefaultHashCost matches the bcrypt work factor used for stored hashes.
const DefaultHashCost = 10

// Service wraps signup and login business rules.
type Service struct {
	repo      Repository
	tokens    *TokenIssuer
	cost      int
	dummyHash []byte
}

// NewService constructs a new Service. Costs outside bcrypt's range fall back to DefaultHashCost.
func NewService(repo Repository, tokens *TokenIssuer, cost int) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	// Unknown usernames still pay for one comparison against this hash.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("bannerhub-unknown-user"), cost)
	return &Service{repo: repo, tokens: tokens, cost: cost, dummyHash: dummy}
}

// Signup hashes password and persists a new user, returning its id.
func (s *Service) Signup(ctx context.Context, username, password string) (int64, error) {
	if strings.TrimSpace(username) == "" {
		return 0, fmt.Errorf("%w: username is required", shared.ErrValidation)
	}
	if password == "" {
		return 0, fmt.Errorf("%w: password is required", shared.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return 0, fmt.Errorf("%w: password must be at most 72 bytes", shared.ErrValidation)
		}
		return 0, fmt.Errorf("auth: hash password: %w", err)
	}
	id, err := s.repo.CreateUser(ctx, username, string(hash))
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Login verifies credentials and issues a signed token for the user.
// Unknown usernames and wrong passwords both yield shared.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", shared.ErrInvalidCredentials
	}
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return "", shared.ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", shared.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", err
	}
	return token, nil
}
