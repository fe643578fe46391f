package main

import (
	"context"
	"sort"

	"github.com/laundryops/backoffice/internal/catalog"
	"github.com/laundryops/backoffice/internal/customer"
	"github.com/laundryops/backoffice/internal/order"
)

//
// ===== IN-MEMORY STUB REPOS (implement the package Repository interfaces) =====
//

type stubCustomerRepo struct {
	items  map[int64]*customer.Customer
	nextID int64
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{items: map[int64]*customer.Customer{}, nextID: 1}
}

func (s *stubCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	c.ID = s.nextID
	s.nextID++
	cp := *c
	s.items[c.ID] = &cp
	return nil
}

func (s *stubCustomerRepo) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	c, ok := s.items[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *stubCustomerRepo) List(ctx context.Context) ([]customer.Customer, error) {
	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]customer.Customer, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.items[id])
	}
	return out, nil
}

func (s *stubCustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	if _, ok := s.items[c.ID]; !ok {
		return customer.ErrNotFound
	}
	cp := *c
	s.items[c.ID] = &cp
	return nil
}

func (s *stubCustomerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

type stubCatalogRepo struct {
	items  []catalog.Service
	nextID int64
}

func newStubCatalogRepo() *stubCatalogRepo { return &stubCatalogRepo{nextID: 1} }

func (s *stubCatalogRepo) Create(ctx context.Context, svc *catalog.Service) error {
	svc.ID = s.nextID
	s.nextID++
	s.items = append(s.items, *svc)
	return nil
}

func (s *stubCatalogRepo) GetByID(ctx context.Context, id int64) (*catalog.Service, error) {
	for _, svc := range s.items {
		if svc.ID == id {
			cp := svc
			return &cp, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *stubCatalogRepo) List(ctx context.Context) ([]catalog.Service, error) {
	out := make([]catalog.Service, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubCatalogRepo) Update(ctx context.Context, svc *catalog.Service) error {
	for i := range s.items {
		if s.items[i].ID == svc.ID {
			s.items[i] = *svc
			return nil
		}
	}
	return catalog.ErrNotFound
}

func (s *stubCatalogRepo) Delete(ctx context.Context, id int64) (bool, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubOrderRepo struct {
	items  []order.Order
	nextID int64
}

func newStubOrderRepo() *stubOrderRepo { return &stubOrderRepo{nextID: 1} }

func (s *stubOrderRepo) Create(ctx context.Context, o *order.Order) error {
	o.ID = s.nextID
	s.nextID++
	s.items = append(s.items, *o)
	return nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	for _, o := range s.items {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, order.ErrNotFound
}

func (s *stubOrderRepo) List(ctx context.Context) ([]order.Order, error) {
	out := make([]order.Order, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubOrderRepo) Update(ctx context.Context, o *order.Order) error {
	for i := range s.items {
		if s.items[i].ID == o.ID {
			s.items[i] = *o
			return nil
		}
	}
	return order.ErrNotFound
}

func (s *stubOrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *stubOrderRepo) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var n int64
	for _, o := range s.items {
		if o.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}
