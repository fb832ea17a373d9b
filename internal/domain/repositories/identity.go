package repositories

import (
	"context"

	"github.com/zenohq/zeno-server/internal/domain/entities"
)

// Session is the identity provider's answer to a successful sign-in or
// sign-up: a bearer token plus the user it belongs to.
type Session struct {
	AccessToken string
	User        entities.User
}

// IdentityStore abstracts the external identity provider. User records and
// their metadata live entirely on the provider side; this service holds no
// local copy.
type IdentityStore interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password, firstName, lastName string) (*Session, error)
	UserMetadata(ctx context.Context, userID string) (entities.UserMetadata, error)
	UpdateUserMetadata(ctx context.Context, userID string, meta entities.UserMetadata) error
}
