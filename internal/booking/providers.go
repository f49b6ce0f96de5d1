package booking

import "sort"

// Static provider catalog keyed by mode of transport. Stand-in for the
// external cab/rail/flight/metro aggregator APIs.
var providersByMode = map[string][]Quote{
	"cab": {
		{Provider: "Ola", Fare: 250, ETAMinutes: 15, BookingURL: "https://ola.com/book"},
		{Provider: "Uber", Fare: 220, ETAMinutes: 12, BookingURL: "https://uber.com/book"},
		{Provider: "Rapido", Fare: 180, ETAMinutes: 20, BookingURL: "https://rapido.com/book"},
	},
	"train": {
		{Provider: "IRCTC", Fare: 120, ETAMinutes: 45, BookingURL: "https://irctc.co.in/book"},
	},
	"flight": {
		{Provider: "IndiGo", Fare: 3200, ETAMinutes: 90, BookingURL: "https://goindigo.in/book"},
		{Provider: "Air India", Fare: 3900, ETAMinutes: 85, BookingURL: "https://airindia.com/book"},
	},
	"metro": {
		{Provider: "Metro", Fare: 40, ETAMinutes: 25, BookingURL: "https://metro.example/book"},
	},
}

// quotesForMode returns the catalog entries for a mode, cheapest first.
// Unknown modes yield an empty list.
func quotesForMode(mode string) []Quote {
	catalog := providersByMode[mode]
	quotes := make([]Quote, len(catalog))
	copy(quotes, catalog)
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Fare < quotes[j].Fare })
	return quotes
}
