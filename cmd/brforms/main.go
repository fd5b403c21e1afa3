package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eduplatform/brforms/pkg/config"
	"github.com/eduplatform/brforms/pkg/form"
	"github.com/eduplatform/brforms/pkg/httpserver"
	"github.com/eduplatform/brforms/pkg/live"
	"github.com/eduplatform/brforms/pkg/logger"
	"github.com/eduplatform/brforms/pkg/requestid"
	"github.com/eduplatform/brforms/pkg/validator"
)

//go:embed forms/*.yaml
var embeddedForms embed.FS

type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"brforms"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
	FormsDir string `env:"FORMS_DIR"`

	HTTP httpserver.Config
}

func main() {
	cfg := config.MustLoad[Config]()

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel, slog.LevelInfo)))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("brforms stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	var (
		schemas fs.FS = embeddedForms
		dir           = "forms"
	)
	if cfg.FormsDir != "" {
		schemas, dir = os.DirFS(cfg.FormsDir), "."
	}

	v := validator.New(validator.WithLogger(log))
	forms, err := form.LoadFS(schemas, dir, form.WithValidator(v), form.WithLogger(log))
	if err != nil {
		return err
	}
	for id, f := range forms {
		log.Info("form loaded", logger.Form(id), slog.Int("inputs", len(f.Inputs)))
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware())
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Mount("/", live.NewHandler(forms, live.WithLogger(log)))

	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}
