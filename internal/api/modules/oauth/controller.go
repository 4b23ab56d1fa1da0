package oauth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/voicedesk/scheduler/internal/calendar"
	"github.com/voicedesk/scheduler/pkg/sdk"
	"go.uber.org/zap"
)

// getAuth redirects the operator to the Google consent screen
func getAuth(c *gin.Context) {
	url, err := calendar.AuthURL(config)
	if err != nil {
		log.Error("failed to build auth URL", zap.Error(err))
		c.JSON(sdk.NewToolError(http.StatusInternalServerError, err.Error()).AsGinResponse())
		return
	}

	c.Redirect(http.StatusFound, url)
}

// getOAuthCallback exchanges the authorization code and shows the refresh
// token so the operator can store it in the environment. This is a one-time
// bootstrap step; the token itself is deliberately not logged.
func getOAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(sdk.NewToolError(http.StatusBadRequest, "Missing ?code=").AsGinResponse())
		return
	}

	token, err := calendar.Exchange(c.Request.Context(), config, code)
	if err != nil {
		log.Error("oauth code exchange failed", zap.Error(err))
		c.JSON(sdk.NewToolError(http.StatusInternalServerError, err.Error()).AsGinResponse())
		return
	}

	log.Info("oauth tokens received", zap.Bool("has_refresh_token", token.RefreshToken != ""))

	refreshToken := token.RefreshToken
	if refreshToken == "" {
		refreshToken = "(No refresh_token returned. Remove app access and try again with prompt=consent.)"
	}

	c.String(http.StatusOK, strings.Join([]string{
		"OAuth complete.",
		"",
		"Copy this refresh token into your environment as GOOGLE_REFRESH_TOKEN:",
		refreshToken,
		"",
		"You can close this tab.",
	}, "\n"))
}
