// Package config loads configuration structs from environment variables.
//
// The first call to Load reads a .env file from the working directory when
// one exists, then fills the struct from the environment using
// github.com/caarlos0/env/v11 tags:
//
//	type Config struct {
//		LogLevel    string `env:"FORMKIT_LOG_LEVEL" envDefault:"info"`
//		ChildrenKey string `env:"FORMKIT_CHILDREN_KEY" envDefault:"children_list"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// errors.Is(err, config.ErrParsingConfig)
//	}
//
// Variables already present in the environment take precedence over .env
// entries. Load re-reads the environment on every call.
package config
