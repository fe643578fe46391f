package order

import "github.com/laundryops/backoffice/internal/listquery"

// ListSpec declares the fields the orders screen searches, filters and sorts
// by: free-text search over customer name and service, exact filters on the
// status and payment enums.
func ListSpec() listquery.Spec[Order] {
	return listquery.Spec[Order]{
		SearchFields: []func(Order) string{
			func(o Order) string { return o.Customer.Name },
			func(o Order) string { return o.Service },
		},
		SortFields: map[string]func(a, b Order) int{
			"id": func(a, b Order) int {
				switch {
				case a.ID < b.ID:
					return -1
				case a.ID > b.ID:
					return 1
				}
				return 0
			},
			"customer": func(a, b Order) int { return listquery.CompareFold(a.Customer.Name, b.Customer.Name) },
			"service":  func(a, b Order) int { return listquery.CompareFold(a.Service, b.Service) },
			"weight":   func(a, b Order) int { return a.Weight.Cmp(b.Weight) },
			"price":    func(a, b Order) int { return a.Price.Cmp(b.Price) },
			"status":   func(a, b Order) int { return listquery.CompareFold(string(a.Status), string(b.Status)) },
			"payment":  func(a, b Order) int { return listquery.CompareFold(string(a.Payment), string(b.Payment)) },
			"created_at": func(a, b Order) int {
				switch {
				case a.CreatedAt.Before(b.CreatedAt):
					return -1
				case a.CreatedAt.After(b.CreatedAt):
					return 1
				}
				return 0
			},
		},
		FilterFields: map[string]func(Order) string{
			"status":  func(o Order) string { return string(o.Status) },
			"payment": func(o Order) string { return string(o.Payment) },
		},
	}
}
