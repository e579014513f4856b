package domain

// SearchRequest holds the parameters of a transport search.
// Codes are opaque: the search use case neither validates nor normalizes them.
type SearchRequest struct {
	// From is the origin location code (e.g., "BKK")
	From string `json:"from"`

	// To is the destination location code (e.g., "CNX")
	To string `json:"to"`

	// Date is the travel date in YYYY-MM-DD format (echoed, not validated)
	Date string `json:"date"`
}

// Key returns the route key for the request.
func (r SearchRequest) Key() RouteKey {
	return NewRouteKey(r.From, r.To)
}

// SearchResult is the envelope returned for a transport search.
type SearchResult struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`

	// Schedules lists matching offerings in catalog order; empty when the route is unknown
	Schedules []ScheduleOffering `json:"schedules"`

	// AffiliateLink is a generic partner search link for the route, present even without schedules
	AffiliateLink string `json:"affiliateLink"`
}

// NewSearchResult echoes the request into a result envelope.
// A nil schedule list is replaced by an empty one so it encodes as [].
func NewSearchResult(req SearchRequest, schedules []ScheduleOffering, affiliateLink string) SearchResult {
	if schedules == nil {
		schedules = []ScheduleOffering{}
	}

	return SearchResult{
		From:          req.From,
		To:            req.To,
		Date:          req.Date,
		Schedules:     schedules,
		AffiliateLink: affiliateLink,
	}
}

// HasSchedules returns true if at least one offering matched.
func (r SearchResult) HasSchedules() bool {
	return len(r.Schedules) > 0
}
