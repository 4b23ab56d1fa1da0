package booking

import (
	"fmt"
	"strings"
)

// MissingFieldsError reports which of the required tool-call fields (name,
// date, time) were absent after exhausting every known payload shape. This
// is a client-input fault, never retried.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields (%s)", strings.Join(e.Fields, ", "))
}

// TemporalParseError reports that neither the strict nor the permissive
// parse could turn the supplied date/time strings into an instant, or that
// the timezone identifier is unknown. The original strings are kept for
// diagnostics.
type TemporalParseError struct {
	Date     string
	Time     string
	Timezone string
	Err      error
}

func (e *TemporalParseError) Error() string {
	return fmt.Sprintf("could not parse date/time (date=%q time=%q timezone=%q)", e.Date, e.Time, e.Timezone)
}

func (e *TemporalParseError) Unwrap() error {
	return e.Err
}
