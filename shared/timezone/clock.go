package timezone

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var appZone atomic.Pointer[Zone]

// SetAppZone sets the zone used by the application clock.
func SetAppZone(zone Zone) {
	appZone.Store(&zone)

	log.Info().
		Str("timezone", zone.String()).
		Str("location", zone.location().String()).
		Msg("Application timezone initialized")
}

// InitAppZone resolves name and installs it as the application zone. An
// unreadable name leaves UTC in place and is returned.
func InitAppZone(resolver *Resolver, name string) error {
	zone, err := resolver.Resolve(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		SetAppZone(Zone{Location: time.UTC, Name: utcName})

		return err
	}

	SetAppZone(zone)

	return nil
}

// AppZone returns the application zone, UTC until one is set.
func AppZone() Zone {
	if zone := appZone.Load(); zone != nil {
		return *zone
	}

	return Zone{Location: time.UTC, Name: utcName}
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return ToAppTime(time.Now())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	zone := appZone.Load()
	if zone == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")

		return t.UTC()
	}

	return zone.In(t)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	return AppZone().location()
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
