// Package config loads application configuration from environment variables
// into typed structs, with fail-fast helpers for required values.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process, then env.Parse populates any
// struct annotated with `env` tags. Each configuration type is cached after
// its first successful parse so components sharing a section see the same
// values.
//
// Usage:
//
//	var httpCfg httpserver.Config
//	config.MustLoad(&httpCfg)
//
// MustLoad panics when a required variable is missing, which is the intended
// startup behavior: a service missing its store URL or signing secret must
// not come up.
package config
