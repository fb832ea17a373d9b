package gcal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/zenohq/zeno-server/internal/domain/entities"
	"github.com/zenohq/zeno-server/internal/domain/repositories"
)

const maxUpcomingEvents = 10

// Client queries the Google Calendar API with per-request credentials. The
// neutral credential value is translated to the vendor token shape only here;
// the oauth2 token source refreshes expired access tokens transparently.
type Client struct {
	// endpoint overrides the API base URL in tests
	endpoint string
}

var _ repositories.CalendarClient = (*Client)(nil)

// NewClient creates a calendar client
func NewClient() *Client {
	return &Client{}
}

// ListUpcomingEvents returns up to 10 upcoming events from the user's primary
// calendar, recurring events expanded, ordered by start time ascending.
func (c *Client) ListUpcomingEvents(ctx context.Context, creds entities.CalendarCredentials) ([]entities.CalendarEvent, error) {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Scopes:       creds.Scopes,
		Endpoint:     oauth2.Endpoint{TokenURL: creds.TokenURL},
	}
	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       creds.Expiry,
	}

	opts := []option.ClientOption{option.WithTokenSource(conf.TokenSource(ctx, token))}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}

	service, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", entities.ErrUpstream, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	result, err := service.Events.List("primary").
		TimeMin(now).
		MaxResults(maxUpcomingEvents).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list calendar events: %v", entities.ErrUpstream, err)
	}

	events := make([]entities.CalendarEvent, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, entities.CalendarEvent{
			Summary:     item.Summary,
			Start:       eventTime(item.Start),
			End:         eventTime(item.End),
			Location:    item.Location,
			Description: item.Description,
		})
	}
	return events, nil
}

// eventTime picks the dateTime for timed events and falls back to the plain
// date for all-day events.
func eventTime(t *calendar.EventDateTime) string {
	if t == nil {
		return ""
	}
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}
