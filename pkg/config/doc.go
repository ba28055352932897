// Package config loads application configuration from environment
// variables into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded at most once per process (and may be
// absent), after which the environment is parsed into any struct with
// `env` field tags.
//
//	type Config struct {
//		CashInside uint64 `env:"TELLER_CASH_INSIDE" envDefault:"100"`
//		PIN        string `env:"TELLER_PIN" envDefault:"1234"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics on failure, for configuration the process cannot start
// without.
package config
