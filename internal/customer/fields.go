package customer

import "github.com/laundryops/backoffice/internal/listquery"

// ListSpec declares the fields the customers screen searches and sorts by.
func ListSpec() listquery.Spec[Customer] {
	return listquery.Spec[Customer]{
		SearchFields: []func(Customer) string{
			func(c Customer) string { return c.Name },
			func(c Customer) string { return c.Phone },
			func(c Customer) string { return c.Address },
		},
		SortFields: map[string]func(a, b Customer) int{
			"id": func(a, b Customer) int {
				switch {
				case a.ID < b.ID:
					return -1
				case a.ID > b.ID:
					return 1
				}
				return 0
			},
			"name":    func(a, b Customer) int { return listquery.CompareFold(a.Name, b.Name) },
			"phone":   func(a, b Customer) int { return listquery.CompareFold(a.Phone, b.Phone) },
			"address": func(a, b Customer) int { return listquery.CompareFold(a.Address, b.Address) },
		},
	}
}
