package timezone

import (
	"errors"
	"fitbook/config"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const (
	// IndiaStandardTime is the zone assumed for start times submitted without an offset.
	IndiaStandardTime = "Asia/Kolkata"
	UTC               = "UTC"

	aliasIST = "IST"
)

var (
	ErrInvalidTimestamp = errors.New("invalid datetime format, expected ISO-8601 such as 2025-06-16T06:00:00+05:30")
	ErrUnknownTimezone  = errors.New("unknown timezone")
)

var (
	// layouts carrying an explicit offset or Z
	offsetLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
	}

	// wall-clock layouts read in the input location
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
)

var (
	appLocation     *time.Location
	inputLocation   *time.Location
	displayLocation *time.Location

	locations = cache.New(cache.NoExpiration, 0)
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = UTC
	}

	appLocation = mustLoad(cfg.App.Timezone, time.UTC)
	inputLocation = mustLoad(orDefault(cfg.App.Schedule.InputTimezone, IndiaStandardTime), time.UTC)
	displayLocation = mustLoad(orDefault(cfg.App.Schedule.DisplayTimezone, UTC), time.UTC)

	log.Info().
		Str("timezone", appLocation.String()).
		Str("input", inputLocation.String()).
		Str("display", displayLocation.String()).
		Msg("Application timezone initialized")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func mustLoad(name string, fallback *time.Location) *time.Location {
	loc, err := LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Kolkata', 'UTC', 'America/New_York'")

		return fallback
	}

	return loc
}

// LoadLocation resolves an IANA zone name, accepting IST as an alias for Asia/Kolkata.
// Resolved locations are kept for the lifetime of the process.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, aliasIST) {
		name = IndiaStandardTime
	}

	if cached, found := locations.Get(name); found {
		if loc, ok := cached.(*time.Location); ok {
			return loc, nil
		}
	}

	// time.LoadLocation treats "" as UTC and "Local" as the host zone; neither is a useful request value.
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}

	locations.Set(name, loc, cache.NoExpiration)

	return loc, nil
}

// Resolve returns the location named by a request, or fallback when name is empty.
func Resolve(name string, fallback *time.Location) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return fallback, nil
	}

	return LoadLocation(name)
}

// ToUTC converts an ISO-8601 timestamp to an absolute UTC instant.
// A value without an offset is read as wall-clock time in the input location.
func ToUTC(value string) (time.Time, error) {
	return ToUTCFrom(value, InputLocation())
}

// ToUTCFrom is ToUTC with an explicit location for offset-less values.
func ToUTCFrom(value string, fallback *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, fallback); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidTimestamp
}

// FromUTC renders an instant in loc as RFC 3339 with offset.
func FromUTC(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Format(time.RFC3339)
}

// InputLocation returns the location assumed for offset-less input.
func InputLocation() *time.Location {
	if inputLocation == nil {
		return mustLoad(IndiaStandardTime, time.UTC)
	}

	return inputLocation
}

// DisplayLocation returns the default rendering location.
func DisplayLocation() *time.Location {
	if displayLocation == nil {
		return time.UTC
	}

	return displayLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}
