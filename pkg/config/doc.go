// Package config reads service configuration from environment variables into
// tagged structs using github.com/caarlos0/env/v11.
//
// A .env file in the working directory, when present, is loaded once before
// the first parse; variables already set in the process win.
//
//	type Config struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		FormsDir string `env:"FORMS_DIR"`
//	}
//
//	cfg, err := config.Load[Config]()
//
// Load caches the parsed value per type, so later calls are cheap and return
// the same configuration. Parse skips both the cache and the process
// environment and is meant for tests.
package config
