package oauth

import (
	"github.com/gin-gonic/gin"
	"github.com/voicedesk/scheduler/pkg/utils"
	"go.uber.org/zap"
)

var (
	config *utils.Config
	log    *zap.Logger
)

// RegisterRoutes registers the routes for the oauth module
func RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/auth", getAuth)
	g.GET("/oauth2callback", getOAuthCallback)
}

// Init stores the configuration the OAuth bootstrap flow reads from
func Init(cfg *utils.Config, logger *zap.Logger) {
	config = cfg
	log = logger
}
