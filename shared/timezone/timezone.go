package timezone

import (
	"fmt"
	"rideflow/config"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

func location() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

func GetLocation() *time.Location {
	return location()
}

// Parse parses value in the application timezone when layout carries no offset.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, location())
}

// ParseTimestamp accepts RFC3339 with or without fractional seconds, and a bare
// "2006-01-02T15:04" as sent by datetime-local inputs.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04"} {
		if t, err := Parse(layout, value); err == nil {
			return ToAppTime(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported timestamp %q", value)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
