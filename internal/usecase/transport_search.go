// Package usecase contains the application logic of the travel affiliate service:
// transport search over the route catalog and the LLM chat proxy.
package usecase

import (
	"fmt"
	"net/url"

	"github.com/siam-trails/travel-affiliate-service/internal/catalog"
	"github.com/siam-trails/travel-affiliate-service/internal/domain"
)

// DefaultPartnerDomain is the booking partner that receives affiliate traffic.
const DefaultPartnerDomain = "www.12go.asia"

// affiliateMarkerParam is the partner's query parameter for the affiliate ID.
const affiliateMarkerParam = "z"

// TransportSearchUseCase defines the transport search operations.
type TransportSearchUseCase interface {
	// Search returns the offerings for the request's route plus a partner search link.
	// It never fails: unknown routes yield an empty schedule list.
	Search(req domain.SearchRequest) domain.SearchResult

	// PopularRoutes returns the curated routes for a destination code.
	PopularRoutes(destinationCode string) []domain.PopularRoute

	// Routes lists every route the catalog has offerings for.
	Routes() []domain.RouteKey
}

// TransportConfig contains configuration options for the transport search use case.
type TransportConfig struct {
	// PartnerDomain is the host of generated affiliate links
	PartnerDomain string

	// Marker is the affiliate ID appended to links; empty leaves links untagged
	Marker string
}

// DefaultTransportConfig returns the default configuration.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		PartnerDomain: DefaultPartnerDomain,
	}
}

// transportSearchService implements TransportSearchUseCase over a RouteCatalog.
type transportSearchService struct {
	catalog       *catalog.RouteCatalog
	partnerDomain string
	marker        string
}

// NewTransportSearchService creates a TransportSearchUseCase backed by the given catalog.
// If config is nil, defaults are used.
func NewTransportSearchService(c *catalog.RouteCatalog, config *TransportConfig) TransportSearchUseCase {
	cfg := DefaultTransportConfig()
	if config != nil {
		if config.PartnerDomain != "" {
			cfg.PartnerDomain = config.PartnerDomain
		}
		cfg.Marker = config.Marker
	}

	return &transportSearchService{
		catalog:       c,
		partnerDomain: cfg.PartnerDomain,
		marker:        cfg.Marker,
	}
}

// Search implements TransportSearchUseCase.Search.
// The request codes are used as given; the catalog match is exact and the
// affiliate link is built even when nothing matched.
func (s *transportSearchService) Search(req domain.SearchRequest) domain.SearchResult {
	schedules := s.catalog.OfferingsFor(req.From, req.To)
	return domain.NewSearchResult(req, schedules, s.affiliateLink(req.Key()))
}

// PopularRoutes implements TransportSearchUseCase.PopularRoutes.
func (s *transportSearchService) PopularRoutes(destinationCode string) []domain.PopularRoute {
	return s.catalog.PopularRoutesFor(destinationCode)
}

// Routes implements TransportSearchUseCase.Routes.
func (s *transportSearchService) Routes() []domain.RouteKey {
	return s.catalog.Routes()
}

// affiliateLink builds the generic partner search link for a route.
func (s *transportSearchService) affiliateLink(key domain.RouteKey) string {
	link := fmt.Sprintf("https://%s/en/travel/bus/%s", s.partnerDomain, key.Slug())
	if s.marker == "" {
		return link
	}
	return link + "?" + url.Values{affiliateMarkerParam: {s.marker}}.Encode()
}

// Ensure transportSearchService implements TransportSearchUseCase at compile time.
var _ TransportSearchUseCase = (*transportSearchService)(nil)
