package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/zenohq/zeno-server/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                 *config.Config
	authHandler         *Auth
	integrationsHandler *Integrations
	chatHandler         *Chat
	authMW              echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, authHandler *Auth, integrationsHandler *Integrations, chatHandler *Chat, authMW echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:                 cfg,
		authHandler:         authHandler,
		integrationsHandler: integrationsHandler,
		chatHandler:         chatHandler,
		authMW:              authMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.welcome)
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupIntegrationRoutes(v1)
	rt.setupChatRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.GET("", rt.authRoot)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/signup", rt.authHandler.Signup)
}

// setupIntegrationRoutes configures third-party integration routes. The OAuth
// callback is unauthenticated: the browser arrives from the provider, and the
// subject identity is carried in the state parameter.
func (rt *Router) setupIntegrationRoutes(g *echo.Group) {
	integrationsGroup := g.Group("/integrations")
	integrationsGroup.GET("/status", rt.integrationsHandler.Status, rt.authMW)

	gcalGroup := integrationsGroup.Group("/google-calendar")
	gcalGroup.GET("/auth-url", rt.integrationsHandler.AuthURL, rt.authMW)
	gcalGroup.GET("/callback", rt.integrationsHandler.Callback)
	gcalGroup.GET("/events", rt.integrationsHandler.Events, rt.authMW)
}

// setupChatRoutes configures chat routes
func (rt *Router) setupChatRoutes(g *echo.Group) {
	g.POST("/chat", rt.chatHandler.Stream, rt.authMW)
}

// welcome greets API explorers at the root
func (rt *Router) welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to Zeno Server API",
	})
}

// authRoot describes the auth endpoint group
func (rt *Router) authRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Auth endpoints",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
