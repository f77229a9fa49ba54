package main

// Config is read from FORMKIT_* environment variables and an optional .env file.
// An empty LogFormat keeps the format chosen by the environment.
type Config struct {
	Env         string `env:"FORMKIT_ENV" envDefault:"development"`
	LogLevel    string `env:"FORMKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"FORMKIT_LOG_FORMAT"`
	ChildrenKey string `env:"FORMKIT_CHILDREN_KEY" envDefault:"children_list"`
}
