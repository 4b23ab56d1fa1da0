package webhook

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/voicedesk/scheduler/internal/booking"
	"github.com/voicedesk/scheduler/internal/calendar"
	"github.com/voicedesk/scheduler/pkg/utils"
	"go.uber.org/zap"
)

// bookingService is the slice of the booking pipeline the controller needs
type bookingService interface {
	Book(ctx context.Context, raw map[string]any) (*booking.Result, error)
}

var svc bookingService

// RegisterRoutes registers the routes for the webhook module
func RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/retell/tool", postToolCall)
}

// Init wires the booking pipeline to the Google Calendar collaborator. A
// missing calendar configuration is not fatal: the OAuth bootstrap routes
// must stay reachable so the refresh token can be obtained in the first
// place, so tool calls just fail with 500 until then.
func Init(cfg *utils.Config, log *zap.Logger) error {
	calendarService, err := calendar.NewService(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize calendar service: %w", err)
	}

	svc = booking.NewService(calendarService, cfg, log)
	return nil
}
