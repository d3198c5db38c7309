package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pbarbosa/restock-tracker/internal/audit"
	"github.com/pbarbosa/restock-tracker/internal/config"
	api "github.com/pbarbosa/restock-tracker/internal/http"
	"github.com/pbarbosa/restock-tracker/internal/http/handlers"
	rl "github.com/pbarbosa/restock-tracker/internal/http/rate_limiter"
	"github.com/pbarbosa/restock-tracker/internal/inventory"
	"github.com/pbarbosa/restock-tracker/internal/statuscache"
	"github.com/pbarbosa/restock-tracker/internal/store"
)

// @title Restock Tracker API
// @version 1.0
// @description REST API for tracking inventory, purchases and priority-driven restocking.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	auditLog := audit.New(os.Stdout)
	if cfg.PrettyLog {
		auditLog = audit.NewConsole()
	}

	fileStore := store.NewFileStore(cfg.DataFile)
	svc := inventory.NewService(fileStore, auditLog)
	handlers.SetService(svc)

	if cfg.RedisAddr != "" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()

		ttl := time.Duration(cfg.CacheTTL) * time.Second
		handlers.SetStatusCache(statuscache.New(rdb, ctx, ttl))
	}

	rl.Configure(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
