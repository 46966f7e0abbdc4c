package randomuser

import "time"

// Config describes the upstream endpoint. Results is fixed per process; there
// is no paging.
type Config struct {
	BaseURL string        `env:"RANDOMUSER_BASE_URL" env-default:"https://randomuser.me/api/" validate:"required,url"`
	Results int           `env:"RANDOMUSER_RESULTS" env-default:"100" validate:"min=1,max=5000"`
	Seed    string        `env:"RANDOMUSER_SEED"`
	Timeout time.Duration `env:"RANDOMUSER_TIMEOUT" env-default:"0s"`
}
