package main

import (
	"os"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "formkit"),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	log := logger.New(opts...)

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		os.Exit(1)
	}
}
