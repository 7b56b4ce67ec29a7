// Package logger builds configured log/slog loggers with environment-driven
// level and format selection plus typed attribute helpers for the domain
// (account ids, habit ids, component names).
package logger
