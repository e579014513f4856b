// Package domain contains the core entities and rules for the travel affiliate service.
// These types are shared by the route catalog, the search use case and the HTTP layer.
package domain

import (
	"fmt"
	"strings"
)

// TransportMode is the kind of vehicle operating a scheduled offering.
// The set is closed: only the constants below are valid.
type TransportMode uint8

const (
	// ModeBus is a full-size intercity coach.
	ModeBus TransportMode = iota + 1

	// ModeTrain is a rail service.
	ModeTrain

	// ModeMinibus is a shared van or minibus transfer.
	ModeMinibus
)

var modeNames = map[TransportMode]string{
	ModeBus:     "bus",
	ModeTrain:   "train",
	ModeMinibus: "minibus",
}

// ParseTransportMode converts a wire value ("bus", "train", "minibus") to a TransportMode.
func ParseTransportMode(s string) (TransportMode, error) {
	for mode, name := range modeNames {
		if name == s {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown transport mode %q", s)
}

// Valid reports whether m is one of the declared modes.
func (m TransportMode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// String returns the wire name of the mode.
func (m TransportMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("TransportMode(%d)", uint8(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m TransportMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid transport mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *TransportMode) UnmarshalText(text []byte) error {
	mode, err := ParseTransportMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ScheduleOffering is one bookable departure on a route.
type ScheduleOffering struct {
	// ID is unique across the whole catalog, not only within a route
	ID string `json:"id"`

	// Mode is the vehicle type
	Mode TransportMode `json:"mode" swaggertype:"string" enums:"bus,train,minibus"`

	// Company is the operator name (e.g., "Nok Air")
	Company string `json:"company"`

	// DepartureTime is the local time of day in HH:MM format
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local time of day in HH:MM format
	ArrivalTime string `json:"arrivalTime"`

	// Duration is a human-readable span (e.g., "1h 15m")
	Duration string `json:"duration"`

	// Price is the fare amount, always positive
	Price float64 `json:"price"`

	// Currency is the ISO 4217 code (e.g., "THB")
	Currency string `json:"currency"`

	// AvailableSeats is the remaining seat capacity
	AvailableSeats int `json:"availableSeats"`

	// Rating is the operator quality score between 0.0 and 5.0
	Rating float64 `json:"rating"`

	// BookingURL is the absolute partner URL for this specific departure
	BookingURL string `json:"bookingUrl"`
}

// Rating bounds for ScheduleOffering.Rating.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// RouteKey identifies a directed origin to destination pair.
// BKK->CNX and CNX->BKK are different keys.
type RouteKey struct {
	Origin      string `json:"from"`
	Destination string `json:"to"`
}

// NewRouteKey creates a RouteKey from two location codes.
func NewRouteKey(origin, destination string) RouteKey {
	return RouteKey{Origin: origin, Destination: destination}
}

// String formats the key as "ORIGIN-DEST".
func (k RouteKey) String() string {
	return k.Origin + "-" + k.Destination
}

// Slug returns the lower-cased "origin-dest" form used in partner URLs.
func (k RouteKey) Slug() string {
	return strings.ToLower(k.Origin) + "-" + strings.ToLower(k.Destination)
}

// PopularRoute is a suggested route shown next to a destination guide.
type PopularRoute struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}
