package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/laundryops/backoffice/internal/catalog"
	"github.com/laundryops/backoffice/internal/httpx"
	"github.com/laundryops/backoffice/internal/listquery"
)

// listServicesHandler godoc
// @Summary  List catalog services
// @Tags     services
// @Param    search     query string false "substring over name"
// @Param    sort       query string false "id | name | price"
// @Param    order      query string false "asc | desc"
// @Param    page       query int    false "1-indexed page"
// @Param    page_size  query int    false "records per page"
// @Success  200 {object} listquery.Page[catalog.Service]
// @Failure  400 {object} httpx.HTTPError
// @Router   /services [get]
func listServicesHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch services")
			return
		}
		page, err := listquery.Evaluate(records, listQueryFromRequest(c), catalog.ListSpec())
		if err != nil {
			httpx.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// createServiceHandler godoc
// @Summary  Create a catalog service
// @Tags     services
// @Param    service body catalog.CreateServiceRequest true "service"
// @Success  201 {object} catalog.Service
// @Failure  400 {object} httpx.HTTPError
// @Router   /services [post]
func createServiceHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.CreateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "invalid body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			httpx.JSONError(c, http.StatusBadRequest, "name is required")
			return
		}
		if req.Price.IsNegative() {
			httpx.JSONError(c, http.StatusBadRequest, "price must not be negative")
			return
		}
		svc := catalog.Service{Name: req.Name, Price: req.Price}
		if err := repo.Create(c.Request.Context(), &svc); err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to create service")
			return
		}
		c.JSON(http.StatusCreated, svc)
	}
}

// getServiceHandler godoc
// @Summary  Get a catalog service
// @Tags     services
// @Param    id path int true "service id"
// @Success  200 {object} catalog.Service
// @Failure  404 {object} httpx.HTTPError
// @Router   /services/{id} [get]
func getServiceHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		svc, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, catalog.ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "service not found")
			return
		}
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch service")
			return
		}
		c.JSON(http.StatusOK, svc)
	}
}

// updateServiceHandler godoc
// @Summary  Update a catalog service
// @Description Changing a price only affects orders created afterwards.
// @Tags     services
// @Param    id path int true "service id"
// @Param    service body catalog.UpdateServiceRequest true "fields to update"
// @Success  200 {object} catalog.Service
// @Failure  404 {object} httpx.HTTPError
// @Router   /services/{id} [put]
func updateServiceHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req catalog.UpdateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "invalid body")
			return
		}
		svc, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, catalog.ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "service not found")
			return
		}
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to fetch service")
			return
		}
		if strings.TrimSpace(req.Name) != "" {
			svc.Name = strings.TrimSpace(req.Name)
		}
		if req.Price != nil {
			if req.Price.IsNegative() {
				httpx.JSONError(c, http.StatusBadRequest, "price must not be negative")
				return
			}
			svc.Price = *req.Price
		}
		if err := repo.Update(c.Request.Context(), svc); err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to update service")
			return
		}
		c.JSON(http.StatusOK, svc)
	}
}

// deleteServiceHandler godoc
// @Summary  Delete a catalog service
// @Description Prices already copied onto orders are kept as recorded.
// @Tags     services
// @Param    id path int true "service id"
// @Success  204
// @Failure  404 {object} httpx.HTTPError
// @Router   /services/{id} [delete]
func deleteServiceHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "failed to delete service")
			return
		}
		if !deleted {
			httpx.JSONError(c, http.StatusNotFound, "service not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
