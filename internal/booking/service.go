package booking

import (
	"context"
	"fmt"

	"github.com/voicedesk/scheduler/pkg/utils"
	"go.uber.org/zap"
)

// Service runs the booking pipeline for a single tool call: normalize the
// raw payload, resolve the window, create the calendar event. Stateless
// between requests aside from read-only configuration.
type Service struct {
	normalizer *Normalizer
	calendar   EventCreator
	defaultTZ  string
	log        *zap.Logger
}

// NewService creates a new booking Service around the calendar collaborator
func NewService(calendar EventCreator, cfg *utils.Config, log *zap.Logger) *Service {
	return &Service{
		normalizer: NewNormalizer(log),
		calendar:   calendar,
		defaultTZ:  cfg.GetWithDefault("DEFAULT_TIMEZONE", DEFAULT_TIMEZONE),
		log:        log,
	}
}

// Book processes one inbound tool-call payload end to end. Each stage
// short-circuits on failure; the caller maps the returned error to an HTTP
// response.
func (s *Service) Book(ctx context.Context, raw map[string]any) (*Result, error) {
	args, err := s.normalizer.Normalize(raw)
	if err != nil {
		return nil, err
	}

	timezone := args.Timezone
	if timezone == "" {
		timezone = s.defaultTZ
	}

	window, err := ResolveWindow(args.Date, args.Time, timezone)
	if err != nil {
		// Unresolvable times usually mean the provider changed what it
		// puts in date/time; keep the extracted values in the log
		s.log.Warn("tool-call time resolution failed",
			zap.String("name", args.Name),
			zap.String("date", args.Date),
			zap.String("time", args.Time),
			zap.String("timezone", timezone),
			zap.Error(err))
		return nil, err
	}

	summary := args.Title
	if summary == "" {
		summary = fmt.Sprintf("Meeting with %s", args.Name)
	}

	description := fmt.Sprintf("Booked via Voice Scheduling Agent.\nName: %s", args.Name)
	if args.PhoneNumber != "" {
		description += fmt.Sprintf("\nPhone: %s", args.PhoneNumber)
	}

	event, err := s.calendar.CreateEvent(ctx, EventInput{
		Summary:     summary,
		Description: description,
		Start:       window.Start,
		End:         window.End,
		Timezone:    window.Timezone,
	})
	if err != nil {
		s.log.Error("calendar event creation failed",
			zap.String("name", args.Name),
			zap.String("summary", summary),
			zap.Time("start", window.Start),
			zap.String("timezone", window.Timezone),
			zap.Error(err))
		// Propagated with the collaborator's own message, no retry
		return nil, err
	}

	s.log.Info("calendar event created",
		zap.String("event_id", event.EventID),
		zap.String("summary", event.Summary),
		zap.Time("start", window.Start),
		zap.String("timezone", window.Timezone))

	return &Result{Args: args, Window: window, Event: event}, nil
}
