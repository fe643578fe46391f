package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/laundryops/backoffice/internal/customer"
	"github.com/laundryops/backoffice/internal/httpx"
	"github.com/laundryops/backoffice/internal/listquery"
	"github.com/laundryops/backoffice/internal/order"
)

// listCustomersHandler godoc
// @Summary  List customers
// @Tags     customers
// @Param    search     query string false "substring over name, phone, address"
// @Param    sort       query string false "id | name | phone | address"
// @Param    order      query string false "asc | desc"
// @Param    page       query int    false "1-indexed page"
// @Param    page_size  query int    false "records per page"
// @Success  200 {object} listquery.Page[customer.Customer]
// @Failure  400 {object} httpx.HTTPError
// @Router   /customers [get]
func listCustomersHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch customers")
			return
		}
		page, err := listquery.Evaluate(records, listQueryFromRequest(c), customer.ListSpec())
		if err != nil {
			httpx.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// createCustomerHandler godoc
// @Summary  Create a customer
// @Tags     customers
// @Param    customer body customer.CreateCustomerRequest true "customer"
// @Success  201 {object} customer.Customer
// @Failure  400 {object} httpx.HTTPError
// @Router   /customers [post]
func createCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customer.CreateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "invalid body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			httpx.JSONError(c, http.StatusBadRequest, "name is required")
			return
		}
		cust := customer.Customer{Name: req.Name, Phone: req.Phone, Address: req.Address}
		if err := repo.Create(c.Request.Context(), &cust); err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to create customer")
			return
		}
		c.JSON(http.StatusCreated, cust)
	}
}

// getCustomerHandler godoc
// @Summary  Get a customer
// @Tags     customers
// @Param    id path int true "customer id"
// @Success  200 {object} customer.Customer
// @Failure  404 {object} httpx.HTTPError
// @Router   /customers/{id} [get]
func getCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		cust, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, customer.ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "customer not found")
			return
		}
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch customer")
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

// updateCustomerHandler godoc
// @Summary  Update a customer
// @Tags     customers
// @Param    id path int true "customer id"
// @Param    customer body customer.UpdateCustomerRequest true "fields to update; empty fields keep their value"
// @Success  200 {object} customer.Customer
// @Failure  404 {object} httpx.HTTPError
// @Router   /customers/{id} [put]
func updateCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req customer.UpdateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "invalid body")
			return
		}
		cust, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, customer.ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "customer not found")
			return
		}
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch customer")
			return
		}
		if strings.TrimSpace(req.Name) != "" {
			cust.Name = strings.TrimSpace(req.Name)
		}
		if req.Phone != "" {
			cust.Phone = req.Phone
		}
		if req.Address != "" {
			cust.Address = req.Address
		}
		if err := repo.Update(c.Request.Context(), cust); err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to update customer")
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

// deleteCustomerHandler godoc
// @Summary  Delete a customer
// @Description Deletion is restricted while orders still reference the customer.
// @Tags     customers
// @Param    id path int true "customer id"
// @Success  204
// @Failure  404 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /customers/{id} [delete]
func deleteCustomerHandler(repo customer.Repository, orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		n, err := orders.CountByCustomer(c.Request.Context(), id)
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to check orders")
			return
		}
		if n > 0 {
			httpx.JSONError(c, http.StatusConflict, fmt.Sprintf("customer is referenced by %d order(s)", n))
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to delete customer")
			return
		}
		if !deleted {
			httpx.JSONError(c, http.StatusNotFound, "customer not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
