// Package logger builds *slog.Logger instances from functional options.
//
// New returns a JSON logger at INFO level writing to stderr unless told
// otherwise:
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "formkit"),
//	    logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//	log.Info("tree flattened", logger.Count(len(flat)))
//
// Development environments log text at DEBUG level, everything else JSON at
// INFO. Attribute helpers in attr.go keep key names consistent.
package logger
