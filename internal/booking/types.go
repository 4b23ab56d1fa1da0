package booking

import (
	"context"
	"time"
)

// Args is the canonical argument set extracted from a tool-call payload.
// Name, Date, and Time are guaranteed non-empty once Normalize succeeds;
// the rest are best-effort.
type Args struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Title       string `json:"title,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// Window is the resolved absolute booking slot. End is always Start plus
// the fixed event duration, both in the named IANA zone.
type Window struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Timezone string    `json:"timezone"`
}

// EventInput is what the calendar collaborator consumes
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string
}

// CreatedEvent is what the calendar collaborator returns
type CreatedEvent struct {
	EventID  string `json:"eventId"`
	HTMLLink string `json:"htmlLink"`
	Summary  string `json:"summary"`
}

// EventCreator is the downstream calendar collaborator. A single create
// call per booking, no retries.
type EventCreator interface {
	CreateEvent(ctx context.Context, in EventInput) (*CreatedEvent, error)
}

// Result carries everything the webhook response needs after a booking
// pipeline run
type Result struct {
	Args   *Args
	Window *Window
	Event  *CreatedEvent
}
