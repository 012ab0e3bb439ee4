// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file is read once, if present, before the first parse;
//   - any struct with `env` tags can be populated by Load;
//   - each configuration type is parsed once and cached by its reflect.Type.
//
// # Usage
//
//	type ReporterConfig struct {
//		Enabled bool   `env:"PROPTYPES_ENABLED" envDefault:"true"`
//		Env     string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg ReporterConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Extra .env files can be applied with LoadEnv or OverloadEnv; both clear
// the cache so the next Load sees the new values.
//
// # Errors
//
//   - ErrParsingConfig: env.Parse rejected the environment.
//   - ErrLoadingEnvFile: a .env file could not be read.
//   - ErrNilPointer: a nil pointer was passed to Load or ForceReload.
//
// # Testing
//
// Call ResetCache between tests that change the environment, or ForceReload
// to re-parse a single type.
package config
