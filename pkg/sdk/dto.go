package sdk

import "time"

// ErrorBody carries the single client-facing failure message
type ErrorBody struct {
	Message string `json:"message"`
}

// Event summarizes the created calendar event for the voice agent
type Event struct {
	EventID  string    `json:"eventId"`
	HTMLLink string    `json:"htmlLink"`
	Summary  string    `json:"summary"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Timezone string    `json:"timezone"`
}

// ToolResponse is the envelope returned by the tool webhook and every
// other JSON endpoint. Success carries status/message/result/event; any
// failure carries only ok:false plus the error body.
type ToolResponse struct {
	OK      bool       `json:"ok"`
	Status  string     `json:"status,omitempty"`
	Message string     `json:"message,omitempty"`
	Result  string     `json:"result,omitempty"`
	Event   *Event     `json:"event,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`

	code int
}

// AsGinResponse converts the response to a (status, body) pair for gin
func (r ToolResponse) AsGinResponse() (int, any) {
	return r.code, r
}

// NewToolSuccess builds the success envelope for a completed booking
func NewToolSuccess(message, result string, event *Event) ToolResponse {
	return ToolResponse{
		OK:      true,
		Status:  "success",
		Message: message,
		Result:  result,
		Event:   event,
		code:    200,
	}
}

// NewToolError builds the failure envelope with the given HTTP status
func NewToolError(code int, message string) ToolResponse {
	return ToolResponse{
		OK:    false,
		Error: &ErrorBody{Message: message},
		code:  code,
	}
}
