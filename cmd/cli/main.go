package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"blogify/internal/client/cli"
	"blogify/internal/client/config"
	"blogify/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
