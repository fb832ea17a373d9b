package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenohq/zeno-server/internal/domain/entities"
	"github.com/zenohq/zeno-server/pkg/config"
)

func newTestClient(url string) *Client {
	return NewClient(&config.SupabaseConfig{
		URL:        url,
		AnonKey:    "anon-key",
		ServiceKey: "service-key",
	})
}

func TestSignIn_Success(t *testing.T) {
	userID := uuid.NewString()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "session-token",
			"user":         map[string]string{"id": userID, "email": "user@example.com"},
		})
	}))
	defer ts.Close()

	session, err := newTestClient(ts.URL).SignIn(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-token", session.AccessToken)
	assert.Equal(t, userID, session.User.ID)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).SignIn(context.Background(), "user@example.com", "wrong")
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestSignUp_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		providerMsg string
		want        error
	}{
		{"duplicate email", "User already registered", entities.ErrEmailAlreadyUsed},
		{"weak password", "Password should be at least 6 characters", entities.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/v1/signup", r.URL.Path)
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(map[string]string{"msg": tt.providerMsg})
			}))
			defer ts.Close()

			_, err := newTestClient(ts.URL).SignUp(context.Background(), "user@example.com", "pw", "Ada", "Lovelace")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignUp_SendsProfileMetadata(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email string            `json:"email"`
			Data  map[string]string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ada", body.Data["first_name"])
		assert.Equal(t, "Lovelace", body.Data["last_name"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "t",
			"user":         map[string]string{"id": uuid.NewString(), "email": body.Email},
		})
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).SignUp(context.Background(), "user@example.com", "pw", "Ada", "Lovelace")
	require.NoError(t, err)
}

func TestUserMetadata_RoundTrip(t *testing.T) {
	userID := uuid.NewString()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users/"+userID, r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": userID,
			"user_metadata": map[string]string{
				"google_refresh_token": "refresh-1",
				"google_access_token":  "access-1",
				"google_token_expiry":  "2026-01-02T15:04:05Z",
			},
		})
	}))
	defer ts.Close()

	meta, err := newTestClient(ts.URL).UserMetadata(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", meta.GoogleRefreshToken)
	assert.True(t, meta.HasCalendarTokens())
}

func TestUpdateUserMetadata(t *testing.T) {
	userID := uuid.NewString()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/auth/v1/admin/users/"+userID, r.URL.Path)

		var body struct {
			UserMetadata entities.UserMetadata `json:"user_metadata"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-1", body.UserMetadata.GoogleRefreshToken)

		json.NewEncoder(w).Encode(map[string]string{"id": userID})
	}))
	defer ts.Close()

	err := newTestClient(ts.URL).UpdateUserMetadata(context.Background(), userID, entities.UserMetadata{
		GoogleAccessToken:  "access-1",
		GoogleTokenExpiry:  "2026-01-02T15:04:05Z",
		GoogleRefreshToken: "refresh-1",
	})
	require.NoError(t, err)
}

func TestUpdateUserMetadata_ProviderFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"msg": "database unavailable"})
	}))
	defer ts.Close()

	err := newTestClient(ts.URL).UpdateUserMetadata(context.Background(), uuid.NewString(), entities.UserMetadata{})
	assert.ErrorIs(t, err, entities.ErrUpstream)
}

func TestUpdateUserMetadata_ClientErrorNotUpstream(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"msg": "user not found"})
	}))
	defer ts.Close()

	err := newTestClient(ts.URL).UpdateUserMetadata(context.Background(), uuid.NewString(), entities.UserMetadata{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrUpstream)
}
