package catalog

import "github.com/siam-trails/travel-affiliate-service/internal/domain"

const (
	currencyTHB = "THB"
	srtCompany  = "State Railway of Thailand"
)

// Default returns the built-in Thailand route catalog.
func Default() *RouteCatalog {
	return New(defaultRoutes(), defaultPopularRoutes())
}

func defaultRoutes() map[domain.RouteKey][]domain.ScheduleOffering {
	return map[domain.RouteKey][]domain.ScheduleOffering{
		domain.NewRouteKey("BKK", "CNX"): {
			{
				ID: "bkk-cnx-001", Mode: domain.ModeBus, Company: "Nok Air",
				DepartureTime: "08:00", ArrivalTime: "09:15", Duration: "1h 15m",
				Price: 1200, Currency: currencyTHB, AvailableSeats: 24, Rating: 4.8,
				BookingURL: "https://www.12go.asia/en/travel/bangkok/chiang-mai",
			},
			{
				ID: "bkk-cnx-002", Mode: domain.ModeTrain, Company: srtCompany,
				DepartureTime: "18:10", ArrivalTime: "07:15", Duration: "13h 5m",
				Price: 881, Currency: currencyTHB, AvailableSeats: 40, Rating: 4.5,
				BookingURL: "https://www.12go.asia/en/travel/bangkok/chiang-mai?type=train",
			},
			{
				ID: "bkk-cnx-003", Mode: domain.ModeBus, Company: "Green Bus",
				DepartureTime: "21:00", ArrivalTime: "06:30", Duration: "9h 30m",
				Price: 650, Currency: currencyTHB, AvailableSeats: 18, Rating: 4.2,
				BookingURL: "https://www.12go.asia/en/travel/bangkok/chiang-mai?type=bus",
			},
		},
		domain.NewRouteKey("CNX", "BKK"): {
			{
				ID: "cnx-bkk-001", Mode: domain.ModeBus, Company: "Sombat Tour",
				DepartureTime: "20:00", ArrivalTime: "05:30", Duration: "9h 30m",
				Price: 700, Currency: currencyTHB, AvailableSeats: 20, Rating: 4.4,
				BookingURL: "https://www.12go.asia/en/travel/chiang-mai/bangkok?type=bus",
			},
			{
				ID: "cnx-bkk-002", Mode: domain.ModeTrain, Company: srtCompany,
				DepartureTime: "17:00", ArrivalTime: "06:15", Duration: "13h 15m",
				Price: 881, Currency: currencyTHB, AvailableSeats: 36, Rating: 4.5,
				BookingURL: "https://www.12go.asia/en/travel/chiang-mai/bangkok?type=train",
			},
		},
		domain.NewRouteKey("BKK", "PHK"): {
			{
				ID: "bkk-phk-001", Mode: domain.ModeBus, Company: "Phuket Tour",
				DepartureTime: "07:00", ArrivalTime: "12:30", Duration: "5h 30m",
				Price: 450, Currency: currencyTHB, AvailableSeats: 30, Rating: 4.0,
				BookingURL: "https://www.12go.asia/en/travel/bangkok/phuket",
			},
			{
				ID: "bkk-phk-002", Mode: domain.ModeBus, Company: "Phuket Central Tour",
				DepartureTime: "18:30", ArrivalTime: "06:30", Duration: "12h",
				Price: 950, Currency: currencyTHB, AvailableSeats: 22, Rating: 4.3,
				BookingURL: "https://www.12go.asia/en/travel/bangkok/phuket?type=vip-bus",
			},
		},
		domain.NewRouteKey("CNX", "PHK"): {
			{
				ID: "cnx-phk-001", Mode: domain.ModeBus, Company: "Green Bus",
				DepartureTime: "16:00", ArrivalTime: "14:00", Duration: "22h",
				Price: 1450, Currency: currencyTHB, AvailableSeats: 16, Rating: 3.9,
				BookingURL: "https://www.12go.asia/en/travel/chiang-mai/phuket",
			},
		},
		domain.NewRouteKey("CNX", "PAI"): {
			{
				ID: "cnx-pai-001", Mode: domain.ModeMinibus, Company: "Prempracha Transport",
				DepartureTime: "07:00", ArrivalTime: "10:00", Duration: "3h",
				Price: 250, Currency: currencyTHB, AvailableSeats: 10, Rating: 4.1,
				BookingURL: "https://www.12go.asia/en/travel/chiang-mai/pai",
			},
			{
				ID: "cnx-pai-002", Mode: domain.ModeMinibus, Company: "Aya Service",
				DepartureTime: "10:30", ArrivalTime: "13:30", Duration: "3h",
				Price: 250, Currency: currencyTHB, AvailableSeats: 9, Rating: 3.9,
				BookingURL: "https://www.12go.asia/en/travel/chiang-mai/pai?operator=aya",
			},
		},
		domain.NewRouteKey("CNX", "CRI"): {
			{
				ID: "cnx-cri-001", Mode: domain.ModeBus, Company: "Green Bus",
				DepartureTime: "08:00", ArrivalTime: "11:00", Duration: "3h",
				Price: 250, Currency: currencyTHB, AvailableSeats: 20, Rating: 4.5,
				BookingURL: "https://www.12go.asia/en/travel/chiang-mai/chiang-rai",
			},
		},
	}
}

func defaultPopularRoutes() map[string][]domain.PopularRoute {
	return map[string][]domain.PopularRoute{
		"CNX": {
			{From: "BKK", To: "CNX", Label: "Bangkok → Chiang Mai"},
			{From: "CNX", To: "BKK", Label: "Chiang Mai → Bangkok"},
			{From: "CNX", To: "PHK", Label: "Chiang Mai → Phuket"},
		},
		"BKK": {
			{From: "BKK", To: "CNX", Label: "Bangkok → Chiang Mai"},
			{From: "BKK", To: "PHK", Label: "Bangkok → Phuket"},
			{From: "CNX", To: "BKK", Label: "Chiang Mai → Bangkok"},
		},
		"PHK": {
			{From: "BKK", To: "PHK", Label: "Bangkok → Phuket"},
			{From: "CNX", To: "PHK", Label: "Chiang Mai → Phuket"},
		},
		"PAI": {
			{From: "CNX", To: "PAI", Label: "Chiang Mai → Pai"},
		},
		"CRI": {
			{From: "CNX", To: "CRI", Label: "Chiang Mai → Chiang Rai"},
		},
	}
}
