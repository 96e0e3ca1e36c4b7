package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/buildinfo"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/cli"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/config"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}),
	))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
