// Package logger builds configured slog loggers.
//
// It exposes a small option-based factory over the standard library's
// structured logging handlers: JSON output at info level by default
// (safe for log aggregation), with overrides for level, format, output
// destination and a static service attribute.
//
//	log := logger.New(
//		logger.WithService("tellerkit"),
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//	)
package logger
