package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/example/covermate/internal/client/cli"
	"github.com/example/covermate/internal/client/config"
	"github.com/example/covermate/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
