package main

import (
	"context"
	"log"
	"net/http"

	rd "github.com/redis/go-redis/v9"

	"fleet_dispatch/internal/config"
	"fleet_dispatch/internal/dispatch"
	"fleet_dispatch/internal/graph"
	"fleet_dispatch/internal/logger"
	"fleet_dispatch/internal/middleware"
	"fleet_dispatch/internal/routes"
	"fleet_dispatch/internal/store"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	middleware.SetSecret(cfg.JWTSecret)

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	rdb := rd.NewClient(&rd.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	computes := store.NewComputeStore(db, store.CancelPolicy{AllowCancelTerminal: cfg.AllowCancelTerminal})
	routeStore := store.NewRouteStore(db)
	publisher := dispatch.NewPublisher(rdb, cfg.ComputeRequestStream)

	resolver := &graph.Resolver{
		DB:        db,
		Computes:  computes,
		Routes:    routeStore,
		Publisher: publisher,
	}
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatalf("graphql schema: %v", err)
	}

	// Solver results come back on their own stream; apply them in the
	// background for as long as the server runs.
	worker := dispatch.NewWorker(rdb, routeStore, cfg.ComputeResultStream, cfg.ComputeResultGroup, cfg.ComputeResultConsumer)
	go worker.Run(context.Background())

	r := routes.SetupRouter(routes.Deps{
		DB:           db,
		GraphHandler: graph.NewHandler(&schema),
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, handler))
}
