package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"brewdash/m/internal/api"
	"brewdash/m/internal/config"
	"brewdash/m/internal/database"
	"brewdash/m/internal/migrations"
	"brewdash/m/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)

	handler := api.New(store.New(db), cfg.Secret)

	log.Printf("brewery dashboard server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
