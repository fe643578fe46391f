package catalog

import "github.com/laundryops/backoffice/internal/listquery"

// ListSpec declares the fields the services screen searches and sorts by.
func ListSpec() listquery.Spec[Service] {
	return listquery.Spec[Service]{
		SearchFields: []func(Service) string{
			func(s Service) string { return s.Name },
		},
		SortFields: map[string]func(a, b Service) int{
			"id": func(a, b Service) int {
				switch {
				case a.ID < b.ID:
					return -1
				case a.ID > b.ID:
					return 1
				}
				return 0
			},
			"name":  func(a, b Service) int { return listquery.CompareFold(a.Name, b.Name) },
			"price": func(a, b Service) int { return a.Price.Cmp(b.Price) },
		},
	}
}
