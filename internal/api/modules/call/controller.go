package call

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voicedesk/scheduler/pkg/sdk"
)

// postCreateWebCall registers a web call with Retell and hands the access
// token to the browser SDK
func postCreateWebCall(c *gin.Context) {
	if client == nil {
		c.JSON(sdk.NewToolError(http.StatusInternalServerError, "Voice agent is not configured").AsGinResponse())
		return
	}

	webCall, err := client.CreateWebCall(c.Request.Context())
	if err != nil {
		c.JSON(sdk.NewToolError(http.StatusInternalServerError, err.Error()).AsGinResponse())
		return
	}

	c.JSON(http.StatusOK, webCall)
}
