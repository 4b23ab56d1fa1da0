package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindowStrictFormat(t *testing.T) {
	window, err := ResolveWindow("2025-01-02", "14:00", "Asia/Kolkata")
	require.NoError(t, err)

	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	want := time.Date(2025, time.January, 2, 14, 0, 0, 0, loc)
	assert.True(t, window.Start.Equal(want), "start should be 14:00 local in Kolkata, got %v", window.Start)
	assert.True(t, window.End.Equal(want.Add(30*time.Minute)))
	assert.Equal(t, "Asia/Kolkata", window.Timezone)
}

func TestResolveWindowPermissiveFallback(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		timeOfDay string
		want      time.Time
	}{
		{
			name:      "Slash-separated date",
			date:      "2025/01/02",
			timeOfDay: "14:00",
			want:      time.Date(2025, time.January, 2, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "US-style date",
			date:      "01/02/2025",
			timeOfDay: "14:00",
			want:      time.Date(2025, time.January, 2, 14, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := ResolveWindow(tt.date, tt.timeOfDay, "UTC")
			require.NoError(t, err)
			assert.True(t, window.Start.Equal(tt.want), "got %v", window.Start)
		})
	}
}

func TestResolveWindowFailures(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		timeOfDay string
		timezone  string
	}{
		{
			name:      "Garbage date",
			date:      "not-a-date",
			timeOfDay: "14:00",
			timezone:  "Asia/Kolkata",
		},
		{
			name:      "Out-of-range month",
			date:      "2025-13-02",
			timeOfDay: "14:00",
			timezone:  "Asia/Kolkata",
		},
		{
			name:      "Unknown timezone",
			date:      "2025-01-02",
			timeOfDay: "14:00",
			timezone:  "Mars/Olympus_Mons",
		},
		{
			name:      "Empty inputs",
			date:      "",
			timeOfDay: "",
			timezone:  "UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveWindow(tt.date, tt.timeOfDay, tt.timezone)
			require.Error(t, err)

			var parseErr *TemporalParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.date, parseErr.Date)
			assert.Equal(t, tt.timeOfDay, parseErr.Time)
		})
	}
}

func TestResolveWindowDeterminism(t *testing.T) {
	first, err := ResolveWindow("2025-01-02", "14:00", "Asia/Kolkata")
	require.NoError(t, err)

	second, err := ResolveWindow("2025-01-02", "14:00", "Asia/Kolkata")
	require.NoError(t, err)

	assert.Equal(t, first.Start.UnixNano(), second.Start.UnixNano())
	assert.Equal(t, first.End.UnixNano(), second.End.UnixNano())
}

func TestResolveWindowDuration(t *testing.T) {
	window, err := ResolveWindow("2025-06-15", "23:45", "America/New_York")
	require.NoError(t, err)

	// Slot crosses midnight; the window stays exactly 30 minutes
	assert.Equal(t, 30*time.Minute, window.End.Sub(window.Start))
}
