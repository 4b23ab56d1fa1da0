package calendar

import (
	"context"
	"fmt"

	"github.com/voicedesk/scheduler/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

// OAuthConfig builds the Google OAuth2 client configuration from the
// environment
func OAuthConfig(cfg *utils.Config) (*oauth2.Config, error) {
	clientID := cfg.Get("GOOGLE_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID not set in environment")
	}

	clientSecret := cfg.Get("GOOGLE_CLIENT_SECRET")
	if clientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_SECRET not set in environment")
	}

	redirectURI := cfg.Get("GOOGLE_REDIRECT_URI")
	if redirectURI == "" {
		return nil, fmt.Errorf("GOOGLE_REDIRECT_URI not set in environment")
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{gcal.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}, nil
}

// AuthURL returns the Google consent URL. Offline access with a forced
// consent prompt is required, otherwise Google omits the refresh token.
func AuthURL(cfg *utils.Config) (string, error) {
	oauthCfg, err := OAuthConfig(cfg)
	if err != nil {
		return "", err
	}

	url := oauthCfg.AuthCodeURL("state-token",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))

	return url, nil
}

// Exchange trades an authorization code for a token set
func Exchange(ctx context.Context, cfg *utils.Config, code string) (*oauth2.Token, error) {
	oauthCfg, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for tokens: %w", err)
	}

	return token, nil
}
