package catalog

import "github.com/shopspring/decimal"

// DerivePrice returns the catalog price for the service named selectedName,
// or previous when no entry matches. The order form calls this when a service
// is picked so the price field fills itself in; a price the user already
// edited is passed back in as previous and survives an unknown name.
// Names are matched exactly; the first match wins (the catalog does not
// enforce unique names).
func DerivePrice(services []Service, selectedName string, previous decimal.Decimal) decimal.Decimal {
	for _, s := range services {
		if s.Name == selectedName {
			return s.Price
		}
	}
	return previous
}
