package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/laundryops/backoffice/internal/catalog"
	"github.com/laundryops/backoffice/internal/listquery"
	"github.com/laundryops/backoffice/internal/order"
)

func seedCatalog(repo *stubCatalogRepo) {
	_ = repo.Create(context.Background(), &catalog.Service{Name: "Cuci Kering", Price: decimal.NewFromInt(15000)})
	_ = repo.Create(context.Background(), &catalog.Service{Name: "Setrika Saja", Price: decimal.NewFromInt(10000)})
}

func postJSON(r http.Handler, url, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_PriceDerivedFromCatalog(t *testing.T) {
	custRepo := newStubCustomerRepo()
	seedCustomers(t, custRepo, "Ana")
	catRepo := newStubCatalogRepo()
	seedCatalog(catRepo)
	orderRepo := newStubOrderRepo()
	r := newTestRouter(custRepo, catRepo, orderRepo)

	w := postJSON(r, "/orders", `{"customer_id":1,"service":"Cuci Kering","weight":"2.5"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got order.Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !got.Price.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("price=%s, want derived 15000", got.Price)
	}
	if got.Status != order.StatusPending || got.Payment != order.PaymentUnpaid {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if got.Customer.Name != "Ana" {
		t.Fatalf("customer not resolved: %+v", got)
	}
}

func TestCreateOrder_ExplicitPriceNotOverwritten(t *testing.T) {
	custRepo := newStubCustomerRepo()
	seedCustomers(t, custRepo, "Ana")
	catRepo := newStubCatalogRepo()
	seedCatalog(catRepo)
	r := newTestRouter(custRepo, catRepo, newStubOrderRepo())

	w := postJSON(r, "/orders", `{"customer_id":1,"service":"Cuci Kering","weight":"2","price":"9000"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got order.Order
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if !got.Price.Equal(decimal.NewFromInt(9000)) {
		t.Fatalf("price=%s, want 9000 (caller override)", got.Price)
	}
}

func TestCreateOrder_UnknownServiceKeepsZeroPrice(t *testing.T) {
	custRepo := newStubCustomerRepo()
	seedCustomers(t, custRepo, "Ana")
	catRepo := newStubCatalogRepo()
	seedCatalog(catRepo)
	r := newTestRouter(custRepo, catRepo, newStubOrderRepo())

	// not in the catalog: no error, price stays at its previous (zero) value
	w := postJSON(r, "/orders", `{"customer_id":1,"service":"Dry Clean","weight":"2"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got order.Order
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if !got.Price.IsZero() {
		t.Fatalf("price=%s, want 0", got.Price)
	}
}

func TestCreateOrder_Invalid(t *testing.T) {
	custRepo := newStubCustomerRepo()
	seedCustomers(t, custRepo, "Ana")
	catRepo := newStubCatalogRepo()
	seedCatalog(catRepo)
	r := newTestRouter(custRepo, catRepo, newStubOrderRepo())

	cases := []struct {
		name string
		body string
	}{
		{"missing customer", `{"service":"Cuci Kering","weight":"2"}`},
		{"unknown customer", `{"customer_id":42,"service":"Cuci Kering","weight":"2"}`},
		{"missing service", `{"customer_id":1,"weight":"2"}`},
		{"zero weight", `{"customer_id":1,"service":"Cuci Kering","weight":"0"}`},
		{"negative weight", `{"customer_id":1,"service":"Cuci Kering","weight":"-1"}`},
		{"negative price", `{"customer_id":1,"service":"Cuci Kering","weight":"2","price":"-5"}`},
		{"bad status", `{"customer_id":1,"service":"Cuci Kering","weight":"2","status":"done"}`},
		{"bad payment", `{"customer_id":1,"service":"Cuci Kering","weight":"2","payment":"iou"}`},
	}
	for _, tc := range cases {
		if w := postJSON(r, "/orders", tc.body); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", tc.name, w.Code, w.Body.String())
		}
	}
}

func TestListOrders_StatusAndPaymentFilters(t *testing.T) {
	custRepo := newStubCustomerRepo()
	seedCustomers(t, custRepo, "Ana", "Budi")
	orderRepo := newStubOrderRepo()
	mk := func(custID int64, cust string, status order.Status, payment order.Payment, weight int64) {
		o := order.Order{
			CustomerID: custID,
			Service:    "Cuci Kering",
			Weight:     decimal.NewFromInt(weight),
			Price:      decimal.NewFromInt(15000),
			Status:     status,
			Payment:    payment,
		}
		o.Customer.ID = custID
		o.Customer.Name = cust
		_ = orderRepo.Create(context.Background(), &o)
	}
	mk(1, "Ana", order.StatusPending, order.PaymentUnpaid, 3)
	mk(2, "Budi", order.StatusCompleted, order.PaymentPaid, 1)
	mk(1, "Ana", order.StatusPending, order.PaymentPaid, 2)
	r := newTestRouter(custRepo, nil, orderRepo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?status=pending&payment=paid", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got listquery.Page[order.Order]
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.TotalMatched != 1 || got.Items[0].ID != 3 {
		t.Fatalf("filter result: %+v", got)
	}

	// sort by weight ascending across all orders
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?sort=weight", nil))
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.TotalMatched != 3 || !got.Items[0].Weight.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("sort result: %+v", got)
	}
}

func TestUpdateOrder_PartialPatch(t *testing.T) {
	custRepo := newStubCustomerRepo()
	seedCustomers(t, custRepo, "Ana")
	orderRepo := newStubOrderRepo()
	o := order.Order{
		CustomerID: 1,
		Service:    "Cuci Kering",
		Weight:     decimal.NewFromInt(2),
		Price:      decimal.NewFromInt(15000),
		Status:     order.StatusPending,
		Payment:    order.PaymentUnpaid,
	}
	o.Customer.ID = 1
	o.Customer.Name = "Ana"
	_ = orderRepo.Create(context.Background(), &o)
	r := newTestRouter(custRepo, nil, orderRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/orders/1", bytes.NewBufferString(`{"status":"completed","payment":"paid"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got, _ := orderRepo.GetByID(context.Background(), 1)
	if got.Status != order.StatusCompleted || got.Payment != order.PaymentPaid {
		t.Fatalf("patch not applied: %+v", got)
	}
	// untouched fields keep their value, price is not re-derived
	if got.Service != "Cuci Kering" || !got.Price.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	// invalid enum rejected
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/orders/1", bytes.NewBufferString(`{"status":"finished"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	// unknown order: 404
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/orders/9", bytes.NewBufferString(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteOrder_OK_And_NotFound(t *testing.T) {
	custRepo := newStubCustomerRepo()
	seedCustomers(t, custRepo, "Ana")
	orderRepo := newStubOrderRepo()
	_ = orderRepo.Create(context.Background(), &order.Order{
		CustomerID: 1,
		Service:    "Cuci Kering",
		Weight:     decimal.NewFromInt(2),
		Price:      decimal.NewFromInt(15000),
		Status:     order.StatusPending,
		Payment:    order.PaymentUnpaid,
	})
	r := newTestRouter(custRepo, nil, orderRepo)

	{
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/orders/1", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
	}
	{
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/orders/1", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
		}
	}
}
