package app

import (
	"github.com/joefazee/countryview/internal/cache"
	"github.com/joefazee/countryview/internal/nexus"
	"github.com/joefazee/countryview/internal/randomuser"
)

type Config struct {
	RandomUser randomuser.Config
	Cache      cache.Config

	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080" validate:"required,numeric"`
	Env      string `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production test"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}
