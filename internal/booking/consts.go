package booking

import "time"

const (
	// Date formats
	DATE_FORMAT     = "2006-01-02"
	TIME_FORMAT     = "15:04"
	DATETIME_FORMAT = DATE_FORMAT + " " + TIME_FORMAT

	// Zone used when neither the tool call nor the environment names one
	DEFAULT_TIMEZONE = "Asia/Kolkata"

	// Every booking is a fixed half-hour slot
	EVENT_DURATION = 30 * time.Minute
)
