package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zenohq/zeno-server/internal/domain/entities"
	"github.com/zenohq/zeno-server/internal/domain/repositories"
	"github.com/zenohq/zeno-server/pkg/config"
)

// Client talks to the Supabase auth (GoTrue) REST API. It is constructed
// explicitly and injected; there is no package-level singleton.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	client     *http.Client
}

var _ repositories.IdentityStore = (*Client)(nil)

// NewClient creates an identity provider client from config
func NewClient(cfg *config.SupabaseConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type sessionResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID           string                `json:"id"`
		Email        string                `json:"email"`
		UserMetadata entities.UserMetadata `json:"user_metadata"`
	} `json:"user"`
}

type errorResponse struct {
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e errorResponse) message() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.ErrorDescription != "":
		return e.ErrorDescription
	default:
		return e.Error
	}
}

// SignIn exchanges an email/password pair for a provider session
func (c *Client) SignIn(ctx context.Context, email, password string) (*repositories.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var sr sessionResponse
	if err := c.post(ctx, "/auth/v1/token?grant_type=password", c.anonKey, body, &sr); err != nil {
		return nil, err
	}
	return &repositories.Session{
		AccessToken: sr.AccessToken,
		User:        entities.User{ID: sr.User.ID, Email: sr.User.Email},
	}, nil
}

// SignUp registers a new user with the identity provider. The profile fields
// are stored in user metadata, the same record that later carries calendar
// tokens.
func (c *Client) SignUp(ctx context.Context, email, password, firstName, lastName string) (*repositories.Session, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
		"data": map[string]string{
			"first_name": firstName,
			"last_name":  lastName,
			"email":      email,
		},
	}

	var sr sessionResponse
	if err := c.post(ctx, "/auth/v1/signup", c.anonKey, body, &sr); err != nil {
		return nil, err
	}
	return &repositories.Session{
		AccessToken: sr.AccessToken,
		User:        entities.User{ID: sr.User.ID, Email: sr.User.Email},
	}, nil
}

type adminUserResponse struct {
	ID           string                `json:"id"`
	Email        string                `json:"email"`
	UserMetadata entities.UserMetadata `json:"user_metadata"`
}

// UserMetadata fetches the metadata record for a user via the admin API
func (c *Client) UserMetadata(ctx context.Context, userID string) (entities.UserMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/auth/v1/admin/users/"+userID, nil)
	if err != nil {
		return entities.UserMetadata{}, err
	}
	c.setAdminHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return entities.UserMetadata{}, fmt.Errorf("%w: identity provider request failed: %v", entities.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return entities.UserMetadata{}, c.providerError(resp)
	}

	var user adminUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return entities.UserMetadata{}, fmt.Errorf("failed to decode user response: %w", err)
	}
	return user.UserMetadata, nil
}

// UpdateUserMetadata writes the metadata record for a user via the admin API.
// Concurrent writers are not serialized here: the provider applies last write
// wins.
func (c *Client) UpdateUserMetadata(ctx context.Context, userID string, meta entities.UserMetadata) error {
	b, err := json.Marshal(map[string]interface{}{"user_metadata": meta})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "PUT", c.baseURL+"/auth/v1/admin/users/"+userID, bytes.NewReader(b))
	if err != nil {
		return err
	}
	c.setAdminHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: identity provider request failed: %v", entities.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.providerError(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) post(ctx context.Context, path, apiKey string, body interface{}, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("apikey", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: identity provider request failed: %v", entities.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.providerError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setAdminHeaders(req *http.Request) {
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
}

// providerError maps the provider's error payload onto domain sentinels. The
// provider does not expose stable error codes on these endpoints, so matching
// is on the message text it documents.
func (c *Client) providerError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var er errorResponse
	_ = json.Unmarshal(body, &er)
	msg := er.message()

	switch {
	case strings.Contains(msg, "Invalid login credentials"):
		return entities.ErrInvalidCredentials
	case strings.Contains(msg, "already registered") || strings.Contains(msg, "already been registered"):
		return entities.ErrEmailAlreadyUsed
	case strings.Contains(msg, "Password"):
		return entities.ErrWeakPassword
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: identity provider returned status %d: %s", entities.ErrUpstream, resp.StatusCode, msg)
	}
	return fmt.Errorf("identity provider returned status %d: %s", resp.StatusCode, msg)
}
