package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/siam-trails/travel-affiliate-service/internal/domain"
)

// fileRoute is one route entry in a catalog file.
type fileRoute struct {
	From      string                    `json:"from"`
	To        string                    `json:"to"`
	Schedules []domain.ScheduleOffering `json:"schedules"`
}

// fileCatalog is the on-disk catalog format.
type fileCatalog struct {
	Routes  []fileRoute                      `json:"routes"`
	Popular map[string][]domain.PopularRoute `json:"popular"`
}

// Load reads a catalog from a JSON file.
// Route order inside each schedules array is preserved.
func Load(path string) (*RouteCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from JSON bytes in the catalog file format.
func Parse(data []byte) (*RouteCatalog, error) {
	var fc fileCatalog
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	routes := make(map[domain.RouteKey][]domain.ScheduleOffering, len(fc.Routes))
	for i, r := range fc.Routes {
		key := domain.NewRouteKey(r.From, r.To)
		if _, dup := routes[key]; dup {
			return nil, fmt.Errorf("parse catalog: routes[%d]: route %s defined twice", i, key)
		}
		routes[key] = r.Schedules
	}

	return New(routes, fc.Popular), nil
}
