package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zenohq/zeno-server/errors"
	dtointegrations "github.com/zenohq/zeno-server/internal/adapter/dto/integrations"
	"github.com/zenohq/zeno-server/internal/domain/entities"
	"github.com/zenohq/zeno-server/internal/domain/repositories"
	"github.com/zenohq/zeno-server/internal/infrastructure/http/middleware"
	"github.com/zenohq/zeno-server/internal/usecase/integrations"
)

// Integrations handles third-party integration HTTP requests
type Integrations struct {
	svc      *integrations.Service
	calendar repositories.CalendarClient
	logger   *zap.Logger
}

// NewIntegrations creates a new integrations handler
func NewIntegrations(svc *integrations.Service, calendar repositories.CalendarClient, logger *zap.Logger) *Integrations {
	return &Integrations{
		svc:      svc,
		calendar: calendar,
		logger:   logger,
	}
}

// AuthURL starts the Google Calendar OAuth flow for the authenticated user
// @Summary      Get Google Calendar authorization URL
// @Description  Builds the Google OAuth authorization URL for the authenticated user
// @Tags         Integrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  integrations.AuthURLResponse  "Authorization URL"
// @Failure      401  {object}  map[string]interface{}  "User not authenticated"
// @Failure      500  {object}  map[string]interface{}  "OAuth provider is not configured"
// @Router       /integrations/google-calendar/auth-url [get]
func (h *Integrations) AuthURL(c echo.Context) error {
	subject := middleware.SubjectID(c)

	authURL, err := h.svc.AuthURL(subject)
	if err != nil {
		if stdErrors.Is(err, entities.ErrProviderNotConfigured) {
			return HandleError(h.logger, c, errors.ErrProviderConfig("google"))
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return c.JSON(http.StatusOK, dtointegrations.AuthURLResponse{AuthURL: authURL})
}

// Callback handles the OAuth callback from Google. The response is always a
// redirect back to the frontend, never JSON: the browser is mid-flow and the
// subject identity rides in the state parameter.
// @Summary      Google Calendar OAuth callback
// @Description  Handles the OAuth callback from Google and redirects back to the frontend
// @Tags         Integrations
// @Param        code   query  string  false  "Authorization code"
// @Param        state  query  string  false  "OAuth state carrying the user id"
// @Success      307  "Redirect to the frontend with the linking outcome"
// @Router       /integrations/google-calendar/callback [get]
func (h *Integrations) Callback(c echo.Context) error {
	ctx := c.Request().Context()

	redirect := h.svc.HandleCallback(ctx, c.QueryParam("code"), c.QueryParam("state"))
	return c.Redirect(http.StatusTemporaryRedirect, redirect)
}

// Events returns the authenticated user's upcoming calendar events
// @Summary      List upcoming calendar events
// @Description  Returns up to 10 upcoming events from the user's primary calendar
// @Tags         Integrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  integrations.EventsResponse  "Upcoming events"
// @Failure      401  {object}  map[string]interface{}  "User not authenticated"
// @Failure      404  {object}  map[string]interface{}  "Google Calendar integration not linked"
// @Failure      500  {object}  map[string]interface{}  "Upstream provider request failed"
// @Router       /integrations/google-calendar/events [get]
func (h *Integrations) Events(c echo.Context) error {
	ctx := c.Request().Context()
	subject := middleware.SubjectID(c)

	creds, err := h.svc.Credentials(ctx, subject)
	if err != nil {
		if stdErrors.Is(err, entities.ErrIntegrationNotLinked) {
			return HandleError(h.logger, c, errors.ErrIntegrationNotLinked())
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	events, err := h.calendar.ListUpcomingEvents(ctx, creds)
	if err != nil {
		if stdErrors.Is(err, entities.ErrUpstream) {
			return HandleError(h.logger, c, errors.ErrUpstreamFailed("google_calendar", err))
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return c.JSON(http.StatusOK, dtointegrations.EventsResponse{Events: events})
}

// Status reports the connection status of all integrations, keyed by
// integration name
// @Summary      Integration status
// @Description  Reports the connection status of all integrations, keyed by integration name
// @Tags         Integrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]entities.IntegrationStatus  "Status per integration"
// @Failure      401  {object}  map[string]interface{}  "User not authenticated"
// @Router       /integrations/status [get]
func (h *Integrations) Status(c echo.Context) error {
	ctx := c.Request().Context()
	subject := middleware.SubjectID(c)

	statuses, err := h.svc.Status(ctx, subject)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return c.JSON(http.StatusOK, statuses)
}
