package entities

import "time"

// CalendarCredentials is a transient, provider-neutral credential set assembled
// from UserMetadata on each request. It carries enough for the calendar adapter
// to refresh the short-lived access token transparently; it is never persisted.
type CalendarCredentials struct {
	AccessToken  string
	RefreshToken string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
	Expiry       time.Time
}

// CalendarEvent is the neutral event shape returned by the calendar adapter.
// Start and End hold either an RFC3339 dateTime or, for all-day events, a
// plain date.
type CalendarEvent struct {
	Summary     string `json:"summary"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}
