package integrations

import "github.com/zenohq/zeno-server/internal/domain/entities"

// AuthURLResponse carries the provider authorization URL for the frontend to
// open
type AuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// EventsResponse carries the user's upcoming calendar events
type EventsResponse struct {
	Events []entities.CalendarEvent `json:"events"`
}
