package http

// SwaggerSearchResult represents the transport search response for swagger documentation.
// @Description Schedules for a route plus a partner search link
type SwaggerSearchResult struct {
	From string `json:"from" example:"BKK"`
	To   string `json:"to" example:"CNX"`
	Date string `json:"date" example:"2026-01-29"`

	// Schedules is empty (never null) when the route is unknown
	Schedules []SwaggerScheduleOffering `json:"schedules"`

	// AffiliateLink is always present, even without schedules
	AffiliateLink string `json:"affiliateLink" example:"https://www.12go.asia/en/travel/bus/bkk-cnx"`
}

// SwaggerScheduleOffering represents one bookable departure.
// @Description A bus, train or minibus departure sold through the booking partner
type SwaggerScheduleOffering struct {
	ID             string  `json:"id" example:"bkk-cnx-001"`
	Mode           string  `json:"mode" enums:"bus,train,minibus" example:"bus"`
	Company        string  `json:"company" example:"Nok Air"`
	DepartureTime  string  `json:"departureTime" example:"08:00"`
	ArrivalTime    string  `json:"arrivalTime" example:"09:15"`
	Duration       string  `json:"duration" example:"1h 15m"`
	Price          float64 `json:"price" example:"1200"`
	Currency       string  `json:"currency" example:"THB"`
	AvailableSeats int     `json:"availableSeats" example:"24"`
	Rating         float64 `json:"rating" minimum:"0" maximum:"5" example:"4.8"`
	BookingURL     string  `json:"bookingUrl" example:"https://www.12go.asia/en/travel/bus/bkk-cnx?id=bkk-cnx-001"`
}

// SwaggerRouteKey represents a directed route.
// @Description A directed origin to destination pair
type SwaggerRouteKey struct {
	From string `json:"from" example:"BKK"`
	To   string `json:"to" example:"CNX"`
}

// SwaggerPopularRoutesResponse represents the popular routes response.
// @Description Curated routes for a destination page
type SwaggerPopularRoutesResponse struct {
	Destination string                `json:"destination" example:"CNX"`
	Routes      []SwaggerPopularRoute `json:"routes"`
}

// SwaggerPopularRoute represents one suggested route.
type SwaggerPopularRoute struct {
	From  string `json:"from" example:"BKK"`
	To    string `json:"to" example:"CNX"`
	Label string `json:"label" example:"Bangkok → Chiang Mai"`
}
