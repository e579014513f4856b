package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/siam-trails/travel-affiliate-service/internal/domain"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/timeutil"
)

// currencyPattern matches ISO 4217 currency codes.
var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Validate checks every catalog invariant and returns all violations joined together.
// partnerDomain is the host every booking URL must point at; empty skips the host check.
func (c *RouteCatalog) Validate(partnerDomain string) error {
	var errs []error
	seen := make(map[string]domain.RouteKey)

	for _, key := range c.Routes() {
		if key.Origin == "" || key.Destination == "" {
			errs = append(errs, fmt.Errorf("route %q: origin and destination are required", key))
		}

		for i, o := range c.routes[key] {
			if prev, dup := seen[o.ID]; dup {
				errs = append(errs, fmt.Errorf("route %s[%d]: duplicate id %q (first seen on %s)", key, i, o.ID, prev))
			} else if o.ID != "" {
				seen[o.ID] = key
			}

			for _, err := range validateOffering(o, partnerDomain) {
				errs = append(errs, fmt.Errorf("route %s[%d] (%s): %w", key, i, o.ID, err))
			}
		}
	}

	for _, code := range c.Destinations() {
		for i, p := range c.popular[code] {
			if p.From == "" || p.To == "" {
				errs = append(errs, fmt.Errorf("popular %s[%d]: from and to are required", code, i))
			}
			if p.Label == "" {
				errs = append(errs, fmt.Errorf("popular %s[%d]: label is required", code, i))
			}
		}
	}

	return errors.Join(errs...)
}

// validateOffering returns the invariant violations of a single offering.
func validateOffering(o domain.ScheduleOffering, partnerDomain string) []error {
	var errs []error

	if o.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if !o.Mode.Valid() {
		errs = append(errs, fmt.Errorf("mode %s is not one of bus, train, minibus", o.Mode))
	}
	if o.Company == "" {
		errs = append(errs, errors.New("company is required"))
	}
	if _, err := timeutil.ParseTimeOfDay(o.DepartureTime); err != nil {
		errs = append(errs, fmt.Errorf("departureTime: %w", err))
	}
	if _, err := timeutil.ParseTimeOfDay(o.ArrivalTime); err != nil {
		errs = append(errs, fmt.Errorf("arrivalTime: %w", err))
	}
	if _, err := timeutil.ParseSpan(o.Duration); err != nil {
		errs = append(errs, fmt.Errorf("duration: %w", err))
	}
	if o.Price <= 0 {
		errs = append(errs, fmt.Errorf("price must be positive, got %v", o.Price))
	}
	if !currencyPattern.MatchString(o.Currency) {
		errs = append(errs, fmt.Errorf("currency must be a 3-letter ISO code, got %q", o.Currency))
	}
	if o.AvailableSeats < 0 {
		errs = append(errs, fmt.Errorf("availableSeats must be non-negative, got %d", o.AvailableSeats))
	}
	if o.Rating < domain.MinRating || o.Rating > domain.MaxRating {
		errs = append(errs, fmt.Errorf("rating must be between %.1f and %.1f, got %v", domain.MinRating, domain.MaxRating, o.Rating))
	}
	if err := validateBookingURL(o.BookingURL, partnerDomain); err != nil {
		errs = append(errs, err)
	}

	return errs
}

func validateBookingURL(raw, partnerDomain string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("bookingUrl must be an absolute URL, got %q", raw)
	}
	if partnerDomain != "" && u.Host != partnerDomain {
		return fmt.Errorf("bookingUrl must point at %s, got host %q", partnerDomain, u.Host)
	}
	return nil
}
