package call

import (
	"github.com/gin-gonic/gin"
	"github.com/voicedesk/scheduler/internal/retell"
	"github.com/voicedesk/scheduler/pkg/utils"
)

var client *retell.Client

// RegisterRoutes registers the routes for the call module
func RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/create-web-call", postCreateWebCall)
}

// Init creates the Retell client. Missing credentials leave the endpoint
// returning 500 rather than preventing the server from starting.
func Init(cfg *utils.Config) error {
	var err error
	client, err = retell.NewClient(cfg)
	if err != nil {
		return err
	}
	return nil
}
