// Package catalog holds the static transport route table and the popular-routes table.
// A RouteCatalog is immutable once built and safe for concurrent use without locking.
package catalog

import (
	"sort"

	"github.com/siam-trails/travel-affiliate-service/internal/domain"
)

// RouteCatalog maps directed routes to their schedule offerings and destinations
// to curated popular routes.
type RouteCatalog struct {
	routes  map[domain.RouteKey][]domain.ScheduleOffering
	popular map[string][]domain.PopularRoute
}

// New builds a catalog from the given tables. The inputs are copied, so later
// changes by the caller do not leak into the catalog.
func New(routes map[domain.RouteKey][]domain.ScheduleOffering, popular map[string][]domain.PopularRoute) *RouteCatalog {
	c := &RouteCatalog{
		routes:  make(map[domain.RouteKey][]domain.ScheduleOffering, len(routes)),
		popular: make(map[string][]domain.PopularRoute, len(popular)),
	}

	for key, offerings := range routes {
		c.routes[key] = append([]domain.ScheduleOffering(nil), offerings...)
	}
	for code, entries := range popular {
		c.popular[code] = append([]domain.PopularRoute(nil), entries...)
	}

	return c
}

// OfferingsFor returns the offerings registered for the exact origin->destination pair,
// in catalog order. Matching is case-sensitive and never falls back to the reverse
// direction. An unknown pair yields an empty, non-nil slice.
func (c *RouteCatalog) OfferingsFor(origin, destination string) []domain.ScheduleOffering {
	offerings := c.routes[domain.NewRouteKey(origin, destination)]

	result := make([]domain.ScheduleOffering, len(offerings))
	copy(result, offerings)
	return result
}

// PopularRoutesFor returns the suggested routes for a destination code.
// An unknown code yields an empty, non-nil slice.
func (c *RouteCatalog) PopularRoutesFor(destinationCode string) []domain.PopularRoute {
	entries := c.popular[destinationCode]

	result := make([]domain.PopularRoute, len(entries))
	copy(result, entries)
	return result
}

// Routes returns every registered route key sorted by origin, then destination.
func (c *RouteCatalog) Routes() []domain.RouteKey {
	keys := make([]domain.RouteKey, 0, len(c.routes))
	for key := range c.routes {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Origin != keys[j].Origin {
			return keys[i].Origin < keys[j].Origin
		}
		return keys[i].Destination < keys[j].Destination
	})
	return keys
}

// Destinations returns every destination code with popular routes, sorted.
func (c *RouteCatalog) Destinations() []string {
	codes := make([]string, 0, len(c.popular))
	for code := range c.popular {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// OfferingCount returns the total number of offerings across all routes.
func (c *RouteCatalog) OfferingCount() int {
	n := 0
	for _, offerings := range c.routes {
		n += len(offerings)
	}
	return n
}
