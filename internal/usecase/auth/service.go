package auth

import (
	"context"
	"fmt"

	"github.com/zenohq/zeno-server/internal/domain/repositories"
)

// Service handles email/password authentication against the identity
// provider. No credential material is ever stored locally.
type Service struct {
	identity repositories.IdentityStore
}

// NewService creates a new auth service
func NewService(identity repositories.IdentityStore) *Service {
	return &Service{
		identity: identity,
	}
}

// Login signs an existing user in and returns the provider session
func (s *Service) Login(ctx context.Context, email, password string) (*repositories.Session, error) {
	session, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}
	return session, nil
}

// Signup registers a new user and returns the provider session
func (s *Service) Signup(ctx context.Context, email, password, firstName, lastName string) (*repositories.Session, error) {
	session, err := s.identity.SignUp(ctx, email, password, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("sign up failed: %w", err)
	}
	return session, nil
}
