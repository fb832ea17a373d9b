package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zenohq/zeno-server/errors"
	dtoauth "github.com/zenohq/zeno-server/internal/adapter/dto/auth"
	"github.com/zenohq/zeno-server/internal/domain/entities"
	"github.com/zenohq/zeno-server/internal/domain/repositories"
	"github.com/zenohq/zeno-server/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Login signs a user in with email and password
// @Summary      Sign in
// @Description  Signs a user in with email and password against the identity provider
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.LoginRequest  true  "Login request"
// @Success      200      {object}  auth.AuthResponse  "Session with access token"
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Failure      401      {object}  map[string]interface{}  "Invalid email or password"
// @Router       /auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dtoauth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Email and password are required"))
	}

	session, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, mapAuthError(err))
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

// Signup registers a new user
// @Summary      Sign up
// @Description  Registers a new user with the identity provider
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.SignupRequest  true  "Signup request"
// @Success      200      {object}  auth.AuthResponse  "Session with access token"
// @Failure      400      {object}  map[string]interface{}  "Invalid request or email already registered"
// @Router       /auth/signup [post]
func (h *Auth) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req dtoauth.SignupRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Email, password and name are required"))
	}

	session, err := h.authService.Signup(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return HandleError(h.logger, c, mapAuthError(err))
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

func sessionResponse(session *repositories.Session) dtoauth.AuthResponse {
	return dtoauth.AuthResponse{
		AccessToken: session.AccessToken,
		User: dtoauth.UserResponse{
			ID:    session.User.ID,
			Email: session.User.Email,
		},
	}
}

func mapAuthError(err error) error {
	switch {
	case stdErrors.Is(err, entities.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials()
	case stdErrors.Is(err, entities.ErrEmailAlreadyUsed):
		return errors.ErrEmailAlreadyRegistered()
	case stdErrors.Is(err, entities.ErrWeakPassword):
		return errors.ErrWeakPassword()
	default:
		return errors.ErrInternal(err)
	}
}
