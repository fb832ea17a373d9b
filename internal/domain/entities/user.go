package entities

// User is the identity-provider view of an account. The provider owns the
// credential; this service only ever reads the id and email back.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserMetadata is the mutable key-value record the identity provider attaches
// to a user. It is the only durable home for calendar OAuth tokens.
type UserMetadata struct {
	GoogleAccessToken         string `json:"google_access_token,omitempty"`
	GoogleTokenExpiry         string `json:"google_token_expiry,omitempty"`
	GoogleRefreshToken        string `json:"google_refresh_token,omitempty"`
	GoogleCalendarLinkedEmail string `json:"google_calendar_linked_email,omitempty"`
}

// HasCalendarTokens reports whether the Google Calendar integration is fully
// linked. All three token fields must be present together; anything less is
// treated as unlinked.
func (m UserMetadata) HasCalendarTokens() bool {
	return m.GoogleAccessToken != "" && m.GoogleTokenExpiry != "" && m.GoogleRefreshToken != ""
}
