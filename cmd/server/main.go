package main

import (
	"context"
	"log"

	"github.com/avoronovs/partyplan/internal/server"
	"github.com/avoronovs/partyplan/internal/server/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("server error: %v", err)
	}
}
