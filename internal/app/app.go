package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"CopyForge/internal/config"
	"CopyForge/internal/domain"
	"CopyForge/internal/infrastructure/llm"
	"CopyForge/internal/infrastructure/research"
	"CopyForge/internal/infrastructure/storage"
	"CopyForge/internal/infrastructure/telegram"
	"CopyForge/internal/logging"
	"CopyForge/internal/plugin"
	"CopyForge/internal/ports"
	"CopyForge/internal/profile"
	"CopyForge/internal/usecase"
	"CopyForge/pkg/logger"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	store, err := profile.NewStore(cfg.Profiles.Dir)
	if err != nil {
		return nil, fmt.Errorf("profile store: %w", err)
	}

	generator, err := buildGenerator(ctx, cfg, baseLogger)
	if err != nil {
		return nil, err
	}

	var researchSource ports.ResearchSource
	if cfg.Research.SearchURL != "" {
		researchSource = research.NewFetcher(cfg.Research, nil)
	}

	var repository ports.RecordRepository
	if cfg.Database.DSN != "" {
		db, dbErr := sql.Open("postgres", cfg.Database.DSN)
		if dbErr != nil {
			return nil, fmt.Errorf("open database: %w", dbErr)
		}
		repository = storage.NewPostgresRepository(db)
	}

	var notifier ports.Notifier
	if tg := cfg.Notifications.Telegram; tg.BotToken != "" && tg.ChatID != "" {
		notifier = telegram.NewNotifier(tg.BotToken, tg.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Profiles:   store,
		Plugins:    plugin.NewRegistry(plugin.Builtin()...),
		Generator:  generator,
		Research:   researchSource,
		Repository: repository,
		Notifier:   notifier,
		Logger:     baseLogger.With("component", "pipeline"),
		RecordLog:  logger.New("records"),
	})

	return &Application{cfg: cfg, pipeline: pipeline}, nil
}

// Generate runs one request through the pipeline.
func (a *Application) Generate(ctx context.Context, req domain.GenerationRequest) (domain.PostProcessResult, error) {
	if a.pipeline == nil {
		return domain.PostProcessResult{}, fmt.Errorf("application is not initialized")
	}
	return a.pipeline.Run(ctx, req)
}

// buildGenerator assembles the primary/fallback provider pair. Gemini is
// primary when configured; otherwise the OpenAI-compatible provider runs
// alone with no fallback.
func buildGenerator(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (ports.TextGenerator, error) {
	var primary, fallback llm.Provider

	if cfg.Gemini.APIKey != "" {
		gemini, err := llm.NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("gemini provider: %w", err)
		}
		primary = gemini
	}

	if cfg.OpenAI.APIKey != "" {
		openAI := llm.NewOpenAIProvider(cfg.OpenAI)
		if primary == nil {
			primary = openAI
		} else {
			fallback = openAI
		}
	}

	if primary == nil {
		return nil, fmt.Errorf("no generative provider configured")
	}

	return llm.NewClient(primary, fallback, baseLogger.With("component", "llm")), nil
}
