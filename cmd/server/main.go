package main

import (
	"context"
	"log"

	"github.com/safenotes/safenotes/internal/server"
	"github.com/safenotes/safenotes/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
