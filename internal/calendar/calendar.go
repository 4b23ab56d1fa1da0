package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voicedesk/scheduler/internal/booking"
	"github.com/voicedesk/scheduler/pkg/utils"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Service wraps the Google Calendar API for event creation. Credentials
// come from the environment: an OAuth client plus a long-lived refresh
// token obtained through the /auth flow.
type Service struct {
	svc        *gcal.Service
	calendarID string
}

// NewService creates a new Service instance
func NewService(ctx context.Context, cfg *utils.Config) (*Service, error) {
	oauthCfg, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}

	refreshToken := cfg.Get("GOOGLE_REFRESH_TOKEN")
	if refreshToken == "" {
		return nil, errors.New("GOOGLE_REFRESH_TOKEN not set in environment")
	}

	// The token source refreshes access tokens on demand for the life of
	// the process
	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	client := oauth2.NewClient(ctx, tokenSource)

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	calendarID, err := resolveCalendarID(cfg)
	if err != nil {
		return nil, err
	}

	return &Service{
		svc:        svc,
		calendarID: calendarID,
	}, nil
}

// CreateEvent inserts a single event into the booking calendar. One
// attempt; any API failure propagates to the caller.
func (s *Service) CreateEvent(ctx context.Context, in booking.EventInput) (*booking.CreatedEvent, error) {
	event := &gcal.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start: &gcal.EventDateTime{
			DateTime: in.Start.Format(time.RFC3339),
			TimeZone: in.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: in.End.Format(time.RFC3339),
			TimeZone: in.Timezone,
		},
	}

	created, err := s.svc.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	summary := created.Summary
	if summary == "" {
		summary = in.Summary
	}

	return &booking.CreatedEvent{
		EventID:  created.Id,
		HTMLLink: created.HtmlLink,
		Summary:  summary,
	}, nil
}
