package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores cached timezone locations.
var locationCache sync.Map

// Timezone names used by the service.
const (
	// UTC is the Coordinated Universal Time.
	UTC = "UTC"

	// ICT is Indochina Time (Bangkok, Chiang Mai, Phuket).
	ICT = "Asia/Bangkok"
)

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names (e.g., constants).
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// NowIn returns the clock's current time in the given timezone.
// Falls back to UTC when the timezone cannot be loaded.
func NowIn(clock Clock, timezone string) time.Time {
	loc, err := GetLocation(timezone)
	if err != nil {
		return clock.Now().UTC()
	}
	return clock.Now().In(loc)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
