package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/laundryops/backoffice/internal/catalog"
	"github.com/laundryops/backoffice/internal/customer"
	"github.com/laundryops/backoffice/internal/httpx"
	"github.com/laundryops/backoffice/internal/listquery"
	"github.com/laundryops/backoffice/internal/order"
)

// listOrdersHandler godoc
// @Summary  List orders
// @Tags     orders
// @Param    search     query string false "substring over customer name and service"
// @Param    status     query string false "pending | in-progress | completed | picked-up"
// @Param    payment    query string false "unpaid | partial | paid"
// @Param    sort       query string false "id | customer | service | weight | price | status | payment | created_at"
// @Param    order      query string false "asc | desc"
// @Param    page       query int    false "1-indexed page"
// @Param    page_size  query int    false "records per page"
// @Success  200 {object} listquery.Page[order.Order]
// @Failure  400 {object} httpx.HTTPError
// @Router   /orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch orders")
			return
		}
		q := listQueryFromRequest(c)
		q.Filters = map[string]string{
			"status":  c.Query("status"),
			"payment": c.Query("payment"),
		}
		page, err := listquery.Evaluate(records, q, order.ListSpec())
		if err != nil {
			httpx.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// createOrderHandler godoc
// @Summary  Create an order
// @Description When price is omitted it is copied from the catalog entry matching the service name.
// @Tags     orders
// @Param    order body order.CreateOrderRequest true "order"
// @Success  201 {object} order.Order
// @Failure  400 {object} httpx.HTTPError
// @Router   /orders [post]
func createOrderHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "invalid body")
			return
		}
		req.Service = strings.TrimSpace(req.Service)
		switch {
		case req.CustomerID <= 0:
			httpx.JSONError(c, http.StatusBadRequest, "customer_id is required")
			return
		case req.Service == "":
			httpx.JSONError(c, http.StatusBadRequest, "service is required")
			return
		case !req.Weight.IsPositive():
			httpx.JSONError(c, http.StatusBadRequest, "weight must be positive")
			return
		}

		if req.Status == "" {
			req.Status = order.StatusPending
		}
		if req.Payment == "" {
			req.Payment = order.PaymentUnpaid
		}
		if !req.Status.Valid() {
			httpx.JSONError(c, http.StatusBadRequest, "invalid status")
			return
		}
		if !req.Payment.Valid() {
			httpx.JSONError(c, http.StatusBadRequest, "invalid payment")
			return
		}

		cust, err := d.customers.GetByID(c.Request.Context(), req.CustomerID)
		if errors.Is(err, customer.ErrNotFound) {
			httpx.JSONError(c, http.StatusBadRequest, "customer not found")
			return
		}
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch customer")
			return
		}

		var price decimal.Decimal
		if req.Price != nil {
			if req.Price.IsNegative() {
				httpx.JSONError(c, http.StatusBadRequest, "price must not be negative")
				return
			}
			price = *req.Price
		} else {
			services, err := d.services.List(c.Request.Context())
			if err != nil {
				httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch services")
				return
			}
			price = catalog.DerivePrice(services, req.Service, decimal.Zero)
		}

		o := order.Order{
			CustomerID: req.CustomerID,
			Customer:   *cust,
			Service:    req.Service,
			Weight:     req.Weight,
			Price:      price,
			Status:     req.Status,
			Payment:    req.Payment,
		}
		if err := d.orders.Create(c.Request.Context(), &o); err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to create order")
			return
		}
		if d.metrics != nil {
			d.metrics.OrdersCreated.Inc()
		}
		c.JSON(http.StatusCreated, o)
	}
}

// getOrderHandler godoc
// @Summary  Get an order
// @Tags     orders
// @Param    id path int true "order id"
// @Success  200 {object} order.Order
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, order.ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "order not found")
			return
		}
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch order")
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderHandler godoc
// @Summary  Update an order
// @Description Partial update; omitted fields keep their value. The price is never re-derived from the catalog here.
// @Tags     orders
// @Param    id path int true "order id"
// @Param    order body order.UpdateOrderRequest true "fields to update"
// @Success  200 {object} order.Order
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id} [patch]
func updateOrderHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req order.UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "invalid body")
			return
		}

		o, err := d.orders.GetByID(c.Request.Context(), id)
		if errors.Is(err, order.ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "order not found")
			return
		}
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch order")
			return
		}

		if req.CustomerID != nil && *req.CustomerID != o.CustomerID {
			cust, err := d.customers.GetByID(c.Request.Context(), *req.CustomerID)
			if errors.Is(err, customer.ErrNotFound) {
				httpx.JSONError(c, http.StatusBadRequest, "customer not found")
				return
			}
			if err != nil {
				httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch customer")
				return
			}
			o.CustomerID = cust.ID
			o.Customer = *cust
		}
		if req.Service != nil {
			if strings.TrimSpace(*req.Service) == "" {
				httpx.JSONError(c, http.StatusBadRequest, "service must not be empty")
				return
			}
			o.Service = strings.TrimSpace(*req.Service)
		}
		if req.Weight != nil {
			if !req.Weight.IsPositive() {
				httpx.JSONError(c, http.StatusBadRequest, "weight must be positive")
				return
			}
			o.Weight = *req.Weight
		}
		if req.Price != nil {
			if req.Price.IsNegative() {
				httpx.JSONError(c, http.StatusBadRequest, "price must not be negative")
				return
			}
			o.Price = *req.Price
		}
		if req.Status != nil {
			if !req.Status.Valid() {
				httpx.JSONError(c, http.StatusBadRequest, "invalid status")
				return
			}
			o.Status = *req.Status
		}
		if req.Payment != nil {
			if !req.Payment.Valid() {
				httpx.JSONError(c, http.StatusBadRequest, "invalid payment")
				return
			}
			o.Payment = *req.Payment
		}

		if err := d.orders.Update(c.Request.Context(), o); err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to update order")
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// deleteOrderHandler godoc
// @Summary  Delete an order
// @Tags     orders
// @Param    id path int true "order id"
// @Success  204
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id} [delete]
func deleteOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to delete order")
			return
		}
		if !deleted {
			httpx.JSONError(c, http.StatusNotFound, "order not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
