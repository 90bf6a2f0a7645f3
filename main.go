package main

import (
	"log"

	"talenthub-backend/internal/config"
	"talenthub-backend/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	srv := server.New(cfg)

	if err := srv.Initialize(); err != nil {
		srv.Echo.Logger.Fatal(err)
	}

	if err := srv.Start(); err != nil {
		srv.Echo.Logger.Fatal(err)
	}
}
