package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"drawlab/adapters/postgres"
	"drawlab/app"
	"drawlab/domain/draw"
	"drawlab/internal/config"
	"drawlab/ui"
)

const version = "1.0.0"

func main() {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewDrawRepository(db)
	service := app.NewAnalysisService(repo, draw.DefaultVariants())

	ops := ui.NewOpsRouter(version, map[string]ui.HealthCheck{
		"database": db.Ping,
	})
	go func() {
		addr := ":" + cfg.Server.OpsPort
		log.Printf("ops listening on %s", addr)
		if err := http.ListenAndServe(addr, ops); err != nil {
			log.Fatalf("ops server: %v", err)
		}
	}()

	server := ui.NewServer(service, cfg.Server.GinMode)
	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("api server: %v", err)
	}
}
