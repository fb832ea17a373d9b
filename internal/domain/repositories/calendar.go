package repositories

import (
	"context"

	"github.com/zenohq/zeno-server/internal/domain/entities"
)

// CalendarClient abstracts the external calendar provider. Failures are
// reported as errors; callers decide whether to degrade or surface them.
type CalendarClient interface {
	ListUpcomingEvents(ctx context.Context, creds entities.CalendarCredentials) ([]entities.CalendarEvent, error)
}
