package calendar

import (
	"fmt"
	"os"
	"strings"

	"github.com/voicedesk/scheduler/pkg/utils"
	"gopkg.in/yaml.v3"
)

// CalendarConfig represents the structure of the optional calendars file,
// mapping friendly calendar names to Google calendar IDs
type CalendarConfig struct {
	Calendars []struct {
		Name        string `json:"name" yaml:"name"`
		Description string `json:"description" yaml:"description"`
		ID          string `json:"id" yaml:"id"`
	} `json:"calendars" yaml:"calendars"`
}

// IDFor maps a calendar name to its ID, case-insensitively. Returns empty
// string when the name is not configured.
func (c CalendarConfig) IDFor(name string) string {
	if name != "" {
		for _, cal := range c.Calendars {
			if strings.EqualFold(cal.Name, name) {
				return cal.ID
			}
		}
	}
	return ""
}

// loadCalendarConfig reads and parses the calendars YAML file
func loadCalendarConfig(path string) (CalendarConfig, error) {
	var calConfig CalendarConfig

	f, err := os.ReadFile(path)
	if err != nil {
		return calConfig, fmt.Errorf("failed to read calendar config file: %w", err)
	}

	if err := yaml.Unmarshal(f, &calConfig); err != nil {
		return calConfig, fmt.Errorf("failed to load calendar config: %w", err)
	}

	return calConfig, nil
}

// resolveCalendarID picks the target calendar for bookings. With a
// CALENDARS_CONFIG file the BOOKING_CALENDAR name is resolved against it;
// otherwise GOOGLE_CALENDAR_ID is used directly, defaulting to the
// account's primary calendar.
func resolveCalendarID(cfg *utils.Config) (string, error) {
	path := cfg.Get("CALENDARS_CONFIG")
	if path == "" {
		return cfg.GetWithDefault("GOOGLE_CALENDAR_ID", "primary"), nil
	}

	calConfig, err := loadCalendarConfig(path)
	if err != nil {
		return "", err
	}

	name := cfg.GetWithDefault("BOOKING_CALENDAR", "primary")
	if id := calConfig.IDFor(name); id != "" {
		return id, nil
	}

	return "", fmt.Errorf("invalid calendar name: %s", name)
}
