package main

import (
	"context"
	"encoding/json"
	"os"

	"CopyForge/internal/app"
	"CopyForge/internal/config"
	"CopyForge/internal/domain"
	"CopyForge/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	if len(os.Args) < 2 {
		logger.Error("usage: copyforge <request.json>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("cannot read request file", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	var req domain.GenerationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		logger.Error("cannot parse request file", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("application init failed", "error", err)
		os.Exit(1)
	}

	result, err := application.Generate(ctx, req)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
