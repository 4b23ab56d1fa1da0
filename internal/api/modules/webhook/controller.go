package webhook

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/voicedesk/scheduler/internal/booking"
	"github.com/voicedesk/scheduler/pkg/sdk"
)

// postToolCall handles the tool-invocation webhook from the voice agent.
// The body is an arbitrary JSON object; all shape tolerance lives in the
// booking pipeline. This is the single place pipeline errors become HTTP
// responses.
func postToolCall(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		// An empty body is the degenerate args-only shape, not a transport
		// fault; let validation name the missing fields
		if !errors.Is(err, io.EOF) {
			c.JSON(sdk.NewToolError(http.StatusBadRequest, "Could not parse request body").AsGinResponse())
			return
		}
		raw = map[string]any{}
	}

	if svc == nil {
		c.JSON(sdk.NewToolError(http.StatusInternalServerError, "Calendar collaborator is not configured").AsGinResponse())
		return
	}

	result, err := svc.Book(c.Request.Context(), raw)
	if err != nil {
		var missingErr *booking.MissingFieldsError
		if errors.As(err, &missingErr) {
			msg := fmt.Sprintf("Missing required fields (%s)", strings.Join(missingErr.Fields, ", "))
			c.JSON(sdk.NewToolError(http.StatusBadRequest, msg).AsGinResponse())
			return
		}

		c.JSON(sdk.NewToolError(http.StatusInternalServerError, err.Error()).AsGinResponse())
		return
	}

	c.JSON(sdk.NewToolSuccess(
		"Event created successfully",
		fmt.Sprintf("Booked %q for %s %s (%s)", result.Event.Summary, result.Args.Date, result.Args.Time, result.Window.Timezone),
		&sdk.Event{
			EventID:  result.Event.EventID,
			HTMLLink: result.Event.HTMLLink,
			Summary:  result.Event.Summary,
			Start:    result.Window.Start,
			End:      result.Window.End,
			Timezone: result.Window.Timezone,
		},
	).AsGinResponse())
}
