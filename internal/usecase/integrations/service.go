package integrations

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/url"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/zenohq/zeno-server/internal/domain/entities"
	"github.com/zenohq/zeno-server/internal/domain/repositories"
	"github.com/zenohq/zeno-server/internal/infrastructure/external/oauth"
	"github.com/zenohq/zeno-server/pkg/jwt"
)

// linkCallbackPath is the frontend page that presents the linking outcome
const linkCallbackPath = "/integrations/link-google-calendar"

// Provider is the OAuth surface the broker needs from the calendar provider
type Provider interface {
	Configured() bool
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	ClientID() string
	ClientSecret() string
	TokenURL() string
}

var _ Provider = (*oauth.GoogleProvider)(nil)

// Service drives the Google Calendar OAuth flow and assembles calendar
// credentials from the identity provider's metadata record. The flow keeps no
// intermediate state of its own; the subject id rides in the OAuth state
// parameter.
type Service struct {
	identity    repositories.IdentityStore
	google      Provider
	frontendURL string
	logger      *zap.Logger

	// writeRetryMax bounds how long a failing metadata write is retried
	writeRetryMax time.Duration
}

// NewService creates a new integrations service
func NewService(identity repositories.IdentityStore, google Provider, frontendURL string, logger *zap.Logger) *Service {
	return &Service{
		identity:      identity,
		google:        google,
		frontendURL:   frontendURL,
		logger:        logger,
		writeRetryMax: 10 * time.Second,
	}
}

// AuthURL builds the authorization URL for the authenticated subject
func (s *Service) AuthURL(subjectID string) (string, error) {
	if !s.google.Configured() {
		return "", entities.ErrProviderNotConfigured
	}
	return s.google.AuthURL(subjectID), nil
}

// HandleCallback processes the provider callback and returns the frontend URL
// to redirect to. Callback failures never surface as API errors: the user is
// mid-browser-flow, so every outcome becomes a redirect.
func (s *Service) HandleCallback(ctx context.Context, code, state string) string {
	base := s.frontendURL + linkCallbackPath

	if code == "" {
		return base + "?error=no_code"
	}
	if state == "" {
		return base + "?error=no_user_id_in_state"
	}

	token, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.Error("oauth code exchange failed",
			zap.String("user_id", state),
			zap.Error(err),
		)
		return errorRedirect(base, "Failed to exchange authorization code")
	}

	meta := entities.UserMetadata{
		GoogleAccessToken:  token.AccessToken,
		GoogleTokenExpiry:  token.Expiry.UTC().Format(time.RFC3339),
		GoogleRefreshToken: token.RefreshToken,
	}

	// The ID token's authenticity was established by the exchange itself, so
	// an unsigned decode suffices to read the display-only linked email.
	if idToken := oauth.IDToken(token); idToken != "" {
		meta.GoogleCalendarLinkedEmail = jwt.EmailFromUnverified(idToken)
	}

	update := func() error {
		err := s.identity.UpdateUserMetadata(ctx, state, meta)
		if err != nil && !stdErrors.Is(err, entities.ErrUpstream) {
			// 4xx class, e.g. an unknown user id in state: retrying cannot help
			return backoff.Permanent(err)
		}
		return err
	}
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = s.writeRetryMax
	if err := backoff.Retry(update, backoff.WithContext(bo, ctx)); err != nil {
		s.logger.Error("failed to store calendar tokens",
			zap.String("user_id", state),
			zap.Error(err),
		)
		return errorRedirect(base, "Failed to store Google Calendar tokens")
	}

	return base + "?status=success"
}

// Credentials assembles calendar credentials for the subject from stored
// metadata. The access token may already be expired; the credential carries
// the refresh token and token endpoint so the calendar client can refresh it
// transparently.
func (s *Service) Credentials(ctx context.Context, subjectID string) (entities.CalendarCredentials, error) {
	meta, err := s.identity.UserMetadata(ctx, subjectID)
	if err != nil {
		return entities.CalendarCredentials{}, fmt.Errorf("failed to read user metadata: %w", err)
	}

	if !meta.HasCalendarTokens() {
		return entities.CalendarCredentials{}, entities.ErrIntegrationNotLinked
	}

	expiry, err := time.Parse(time.RFC3339, meta.GoogleTokenExpiry)
	if err != nil {
		// An unreadable expiry just means the first calendar call refreshes.
		expiry = time.Time{}
	}

	return entities.CalendarCredentials{
		AccessToken:  meta.GoogleAccessToken,
		RefreshToken: meta.GoogleRefreshToken,
		TokenURL:     s.google.TokenURL(),
		ClientID:     s.google.ClientID(),
		ClientSecret: s.google.ClientSecret(),
		Scopes:       oauth.CalendarScopes,
		Expiry:       expiry,
	}, nil
}

// Status reports the connection state of every known integration for the
// subject, keyed by integration name.
func (s *Service) Status(ctx context.Context, subjectID string) (map[string]entities.IntegrationStatus, error) {
	meta, err := s.identity.UserMetadata(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to read user metadata: %w", err)
	}

	statuses := make(map[string]entities.IntegrationStatus, len(statusChecks))
	for name, check := range statusChecks {
		statuses[name] = check(meta)
	}
	return statuses, nil
}

func errorRedirect(base, message string) string {
	return base + "?status=error&message=" + url.QueryEscape(message)
}
