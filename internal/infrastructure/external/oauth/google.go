package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// CalendarScopes are the scopes requested when linking Google Calendar:
// read-only calendar access plus enough identity to report the linked email.
var CalendarScopes = []string{
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
	"openid",
}

// GoogleProvider handles the Google OAuth2 authorization-code flow for the
// calendar integration
type GoogleProvider struct {
	config *oauth2.Config
}

// NewGoogleProvider creates a new Google OAuth provider
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       CalendarScopes,
		Endpoint:     google.Endpoint,
	}

	return &GoogleProvider{
		config: config,
	}
}

// Configured reports whether client credentials are present
func (g *GoogleProvider) Configured() bool {
	return g.config.ClientID != "" && g.config.ClientSecret != ""
}

// AuthURL returns the authorization URL for the given state. Offline access
// and a forced consent prompt guarantee a refresh token even when the user
// re-authorizes an already-granted app.
func (g *GoogleProvider) AuthURL(state string) string {
	return g.config.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

// ExchangeCode exchanges the authorization code for tokens
func (g *GoogleProvider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return token, nil
}

// IDToken extracts the OpenID Connect ID token delivered alongside the access
// token, or "" when the provider sent none.
func IDToken(token *oauth2.Token) string {
	idToken, _ := token.Extra("id_token").(string)
	return idToken
}

// ClientID returns the configured OAuth client id
func (g *GoogleProvider) ClientID() string {
	return g.config.ClientID
}

// ClientSecret returns the configured OAuth client secret
func (g *GoogleProvider) ClientSecret() string {
	return g.config.ClientSecret
}

// TokenURL returns the provider token endpoint
func (g *GoogleProvider) TokenURL() string {
	return g.config.Endpoint.TokenURL
}
