package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/zenohq/zeno-server/docs"
	"github.com/zenohq/zeno-server/internal/adapter/handler"
	"github.com/zenohq/zeno-server/internal/infrastructure/external/gcal"
	"github.com/zenohq/zeno-server/internal/infrastructure/external/identity"
	"github.com/zenohq/zeno-server/internal/infrastructure/external/oauth"
	httpmw "github.com/zenohq/zeno-server/internal/infrastructure/http/middleware"
	"github.com/zenohq/zeno-server/internal/usecase/auth"
	"github.com/zenohq/zeno-server/internal/usecase/chat"
	"github.com/zenohq/zeno-server/internal/usecase/integrations"
	pkgai "github.com/zenohq/zeno-server/pkg/ai"
	"github.com/zenohq/zeno-server/pkg/config"
	"github.com/zenohq/zeno-server/pkg/jwt"
	pkgvalidator "github.com/zenohq/zeno-server/pkg/validator"
)

// @title           Zeno Server API
// @version         1.0
// @description     Backend API for the Zeno productivity assistant: identity auth, Google Calendar integration, and streaming chat

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize external provider clients
	log.Println("🔧 Initializing provider clients...")
	identityClient := identity.NewClient(&cfg.Supabase)
	googleProvider := oauth.NewGoogleProvider(
		cfg.Google.ClientID,
		cfg.Google.ClientSecret,
		cfg.Google.RedirectURL,
	)
	calendarClient := gcal.NewClient()
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)

	// Initialize token verifier
	log.Println("🔑 Initializing token verifier...")
	verifier := jwt.NewVerifier(cfg.Supabase.JWTSecret, "authenticated")

	// Initialize services
	log.Println("✨ Initializing services...")
	authService := auth.NewService(identityClient)
	integrationsService := integrations.NewService(identityClient, googleProvider, cfg.Frontend.BaseURL, logger)
	chatService := chat.NewService(geminiClient, integrationsService, calendarClient, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, logger)
	integrationsHandler := handler.NewIntegrations(integrationsService, calendarClient, logger)
	chatHandler := handler.NewChat(chatService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(verifier)
	router := handler.NewRouter(cfg, authHandler, integrationsHandler, chatHandler, authEchoMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
