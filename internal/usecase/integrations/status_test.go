package integrations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenohq/zeno-server/internal/domain/entities"
)

func TestGoogleCalendarStatus_Connected(t *testing.T) {
	status := GoogleCalendarStatus(entities.UserMetadata{
		GoogleRefreshToken:        "refresh-1",
		GoogleCalendarLinkedEmail: "linked@gmail.com",
	})

	assert.True(t, status.IsConnected)
	assert.Nil(t, status.ErrorMessage)
	require.NotNil(t, status.LinkedAccountEmail)
	assert.Equal(t, "linked@gmail.com", *status.LinkedAccountEmail)
}

func TestGoogleCalendarStatus_Disconnected(t *testing.T) {
	status := GoogleCalendarStatus(entities.UserMetadata{})

	assert.False(t, status.IsConnected)
	require.NotNil(t, status.ErrorMessage)
	assert.Equal(t, MissingRefreshTokenMessage, *status.ErrorMessage)
	assert.Nil(t, status.LinkedAccountEmail)
}

func TestGoogleCalendarStatus_CheckedAtUTC(t *testing.T) {
	status := GoogleCalendarStatus(entities.UserMetadata{GoogleRefreshToken: "refresh-1"})

	checked, err := time.Parse(time.RFC3339, status.LastCheckedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), checked, 5*time.Second)
	assert.Regexp(t, `Z$`, status.LastCheckedAt)
}
