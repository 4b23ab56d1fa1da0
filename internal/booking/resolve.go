package booking

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ResolveWindow turns the free-form date/time strings from a tool call into
// an absolute booking window in the given IANA timezone. The strict
// YYYY-MM-DD HH:mm format the agent is prompted to produce is tried first;
// anything else goes through permissive parsing of the concatenated
// strings. An unknown timezone is a parse failure, never a silent UTC
// coercion, and no failure ever defaults to "now".
func ResolveWindow(dateStr, timeStr, timezone string) (*Window, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, &TemporalParseError{Date: dateStr, Time: timeStr, Timezone: timezone, Err: err}
	}

	combined := strings.TrimSpace(dateStr + " " + timeStr)

	start, err := time.ParseInLocation(DATETIME_FORMAT, combined, loc)
	if err != nil {
		// fallback: flexible parsing of whatever the agent produced
		start, err = dateparse.ParseIn(combined, loc)
		if err != nil {
			return nil, &TemporalParseError{Date: dateStr, Time: timeStr, Timezone: timezone, Err: err}
		}
	}

	return &Window{
		Start:    start,
		End:      start.Add(EVENT_DURATION),
		Timezone: timezone,
	}, nil
}
