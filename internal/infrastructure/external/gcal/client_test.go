package gcal

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenohq/zeno-server/internal/domain/entities"
)

func testCredentials() entities.CalendarCredentials {
	return entities.CalendarCredentials{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenURL:     "https://oauth2.googleapis.com/token",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Scopes:       []string{"https://www.googleapis.com/auth/calendar.readonly"},
		// Unexpired so the token source never hits the token endpoint.
		Expiry: time.Now().Add(time.Hour),
	}
}

func TestListUpcomingEvents(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/calendars/primary/events")
		assert.Equal(t, "10", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))
		assert.Equal(t, "startTime", r.URL.Query().Get("orderBy"))
		assert.NotEmpty(t, r.URL.Query().Get("timeMin"))
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"items": [
				{
					"summary": "Standup",
					"start": {"dateTime": "2026-09-01T09:00:00Z"},
					"end": {"dateTime": "2026-09-01T09:15:00Z"},
					"location": "Meet"
				},
				{
					"summary": "Company holiday",
					"start": {"date": "2026-09-02"},
					"end": {"date": "2026-09-03"}
				}
			]
		}`)
	}))
	defer ts.Close()

	client := &Client{endpoint: ts.URL}

	events, err := client.ListUpcomingEvents(context.Background(), testCredentials())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Standup", events[0].Summary)
	assert.Equal(t, "2026-09-01T09:00:00Z", events[0].Start)
	assert.Equal(t, "Meet", events[0].Location)

	// All-day events carry the plain date
	assert.Equal(t, "2026-09-02", events[1].Start)
}

func TestListUpcomingEvents_ProviderFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 500, "message": "backend error"}}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := &Client{endpoint: ts.URL}

	events, err := client.ListUpcomingEvents(context.Background(), testCredentials())
	assert.ErrorIs(t, err, entities.ErrUpstream)
	assert.Empty(t, events)
}
