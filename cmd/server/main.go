package main

import (
	"context"
	"log"

	"github.com/laundryops/backoffice/internal/catalog"
	"github.com/laundryops/backoffice/internal/config"
	"github.com/laundryops/backoffice/internal/customer"
	"github.com/laundryops/backoffice/internal/db"
	"github.com/laundryops/backoffice/internal/metrics"
	"github.com/laundryops/backoffice/internal/order"

	_ "github.com/laundryops/backoffice/docs"
)

// @title           Laundry Back-Office API
// @version         1.0
// @description     CRUD API for customers, the service catalog and orders, with list-view queries and order reports.
// @BasePath        /
func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("[db] %v", err)
	}

	d := deps{
		customers: customer.NewPGRepo(pool),
		services:  catalog.NewPGRepo(pool),
		orders:    order.NewPGRepo(pool),
		metrics:   metrics.NewRegistry(),
	}

	r := newRouter(d)
	log.Printf("server listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
