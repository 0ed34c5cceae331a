package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/authvault/internal/server"
	"github.com/dmitrijs2005/authvault/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
