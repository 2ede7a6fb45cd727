package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/safenotes/safenotes/internal/buildinfo"
	"github.com/safenotes/safenotes/internal/client/cli"
	"github.com/safenotes/safenotes/internal/client/config"
	"github.com/safenotes/safenotes/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
