package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/voicedesk/scheduler/internal/api/middleware"
	"github.com/voicedesk/scheduler/pkg/sdk"
	"github.com/voicedesk/scheduler/pkg/utils"
	"go.uber.org/zap"

	call_module "github.com/voicedesk/scheduler/internal/api/modules/call"
	health_module "github.com/voicedesk/scheduler/internal/api/modules/health"
	oauth_module "github.com/voicedesk/scheduler/internal/api/modules/oauth"
	webhook_module "github.com/voicedesk/scheduler/internal/api/modules/webhook"
)

func Start(cfg *utils.Config, log *zap.Logger) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")

	if cfg.GetWithDefault("ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Add app level settings/routes
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(log))

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(sdk.NewToolError(http.StatusNotFound, "Not Found").AsGinResponse())
	})

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Voice Scheduling Agent backend is running. Use /health or POST /retell/tool")
	})

	// All routes live at the root so the voice provider and browser SDK can
	// use the paths they were configured with
	baseGroup := engine.Group("")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)

	oauth_module.RegisterRoutes(baseGroup)
	oauth_module.Init(cfg, log)

	webhook_module.RegisterRoutes(baseGroup)
	if err := webhook_module.Init(cfg, log); err != nil {
		log.Warn("webhook module started without a working calendar pipeline", zap.Error(err))
	}

	call_module.RegisterRoutes(baseGroup)
	if err := call_module.Init(cfg); err != nil {
		log.Warn("call module started without a working retell client", zap.Error(err))
	}

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
