package integrations

import (
	"time"

	"github.com/zenohq/zeno-server/internal/domain/entities"
)

// MissingRefreshTokenMessage is reported when the integration has no stored
// refresh token and must be re-linked.
const MissingRefreshTokenMessage = "Missing Google Calendar refresh token. Please re-link your account."

// statusChecks maps integration names to their status check. Add new
// integrations here as they are built.
var statusChecks = map[string]func(entities.UserMetadata) entities.IntegrationStatus{
	"google_calendar": GoogleCalendarStatus,
}

// GoogleCalendarStatus derives the Google Calendar connection state from
// stored metadata. Pure: no network calls, evaluated fresh on every request.
func GoogleCalendarStatus(meta entities.UserMetadata) entities.IntegrationStatus {
	status := entities.IntegrationStatus{
		LastCheckedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if meta.GoogleRefreshToken != "" {
		status.IsConnected = true
	} else {
		msg := MissingRefreshTokenMessage
		status.ErrorMessage = &msg
	}

	if meta.GoogleCalendarLinkedEmail != "" {
		email := meta.GoogleCalendarLinkedEmail
		status.LinkedAccountEmail = &email
	}

	return status
}
