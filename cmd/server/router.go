package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/laundryops/backoffice/internal/catalog"
	"github.com/laundryops/backoffice/internal/customer"
	"github.com/laundryops/backoffice/internal/httpx"
	"github.com/laundryops/backoffice/internal/listquery"
	"github.com/laundryops/backoffice/internal/metrics"
	"github.com/laundryops/backoffice/internal/order"
)

const defaultPageSize = 20

type deps struct {
	customers customer.Repository
	services  catalog.Repository
	orders    order.Repository
	metrics   *metrics.Registry
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	if d.metrics != nil {
		r.Use(httpx.Metrics(d.metrics))
		r.GET("/metrics", gin.WrapH(d.metrics.Handler()))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/customers", listCustomersHandler(d.customers))
	r.POST("/customers", createCustomerHandler(d.customers))
	r.GET("/customers/:id", getCustomerHandler(d.customers))
	r.PUT("/customers/:id", updateCustomerHandler(d.customers))
	r.DELETE("/customers/:id", deleteCustomerHandler(d.customers, d.orders))

	r.GET("/services", listServicesHandler(d.services))
	r.POST("/services", createServiceHandler(d.services))
	r.GET("/services/:id", getServiceHandler(d.services))
	r.PUT("/services/:id", updateServiceHandler(d.services))
	r.DELETE("/services/:id", deleteServiceHandler(d.services))

	r.GET("/orders", listOrdersHandler(d.orders))
	r.POST("/orders", createOrderHandler(d))
	r.GET("/orders/:id", getOrderHandler(d.orders))
	r.PATCH("/orders/:id", updateOrderHandler(d))
	r.DELETE("/orders/:id", deleteOrderHandler(d.orders))

	r.GET("/reports/summary", reportSummaryHandler(d.orders))
	r.GET("/reports/orders.csv", ordersCSVHandler(d.orders))

	return r
}

// listQueryFromRequest maps the shared query-string params (search, sort,
// order, page, page_size) onto an engine query. Anything non-numeric in the
// paging params falls through to the engine's own validation.
func listQueryFromRequest(c *gin.Context) listquery.Query {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	return listquery.Query{
		Search:   strings.TrimSpace(c.Query("search")),
		SortKey:  c.Query("sort"),
		SortDir:  listquery.ParseDirection(c.Query("order")),
		Page:     page,
		PageSize: size,
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
