package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fitforge/fitforge/internal/envstruct"
	"github.com/fitforge/fitforge/internal/errors"
	"github.com/fitforge/fitforge/internal/flightrecorder"
	"github.com/fitforge/fitforge/internal/image"
	"github.com/fitforge/fitforge/internal/logging"
	"github.com/fitforge/fitforge/internal/plan"
	"github.com/fitforge/fitforge/internal/quote"
	"github.com/fitforge/fitforge/internal/speech"
	"github.com/fitforge/fitforge/internal/sqlite"
	"github.com/joho/godotenv"
)

type application struct {
	logger         *slog.Logger
	planService    *plan.Service
	imageFinder    *image.Finder
	speechService  *speech.Service
	quoteService   *quote.Service
	corsOrigins    []string
	flightRecorder *flightrecorder.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITFORGE_ADDR" envDefault:"localhost:4000"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"FITFORGE_SQLITE_URL" envDefault:"./fitforge.sqlite3"`
	// OpenAIAPIKey enables GPT-4o plan generation and AI motivation quotes when set.
	OpenAIAPIKey string `env:"FITFORGE_OPENAI_API_KEY" envDefault:""`
	// GeminiAPIKey enables the Gemini fallback generator when set.
	GeminiAPIKey string `env:"FITFORGE_GEMINI_API_KEY" envDefault:""`
	// ElevenLabsAPIKey enables text-to-speech audio rendering when set.
	ElevenLabsAPIKey string `env:"FITFORGE_ELEVENLABS_API_KEY" envDefault:""`
	// ElevenLabsVoiceID selects the ElevenLabs voice.
	ElevenLabsVoiceID string `env:"FITFORGE_ELEVENLABS_VOICE_ID" envDefault:"EXAVITQu4vr4xnSDxMaL"`
	// ReplicateAPIToken enables AI image generation when set.
	ReplicateAPIToken string `env:"FITFORGE_REPLICATE_API_TOKEN" envDefault:""`
	// CORSOrigin is the allowed origin of the browser frontend.
	CORSOrigin string `env:"FITFORGE_CORS_ORIGIN" envDefault:"http://localhost:5173"`
	// TracesDir enables runtime trace capture for slow requests when set.
	TracesDir string `env:"FITFORGE_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	app := application{
		logger: logger,
		planService: plan.NewService(db, logger, plan.Config{
			OpenAIAPIKey: cfg.OpenAIAPIKey,
			GeminiAPIKey: cfg.GeminiAPIKey,
		}),
		imageFinder: image.NewFinder(cfg.ReplicateAPIToken, logger),
		speechService: speech.NewService(speech.Config{
			ElevenLabsAPIKey: cfg.ElevenLabsAPIKey,
			VoiceID:          cfg.ElevenLabsVoiceID,
			Synth:            nil,
		}, logger),
		quoteService: quote.NewService(cfg.OpenAIAPIKey, logger),
		corsOrigins:  []string{cfg.CORSOrigin},
	}

	if cfg.TracesDir != "" {
		recorder, recorderErr := flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			TracesDirectory: cfg.TracesDir,
		})
		if recorderErr != nil {
			return errors.Wrap(recorderErr, "create flight recorder", slog.String("dir", cfg.TracesDir))
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
		app.flightRecorder = recorder
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	// Missing .env is fine, the environment takes precedence anyway.
	_ = godotenv.Load()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
