package deps

import (
	"github.com/joefazee/countryview/internal/cache"
	"github.com/joefazee/countryview/internal/logger"
	"github.com/joefazee/countryview/internal/metrics"
	"github.com/joefazee/countryview/internal/sanitizer"
	"github.com/joefazee/countryview/models"
)

// Container holds all shared dependencies
type Container struct {
	Sanitizer sanitizer.HTMLStripperer
	Logger    logger.Logger
	Cache     cache.Cache[[]models.UserRecord]
	Metrics   *metrics.Metrics

	// Store services as interfaces to avoid imports
	services map[string]interface{}
}

func NewContainer(sanitizer sanitizer.HTMLStripperer,
	logger logger.Logger,
	cache cache.Cache[[]models.UserRecord],
	metrics *metrics.Metrics,
) *Container {
	return &Container{
		Sanitizer: sanitizer,
		Logger:    logger,
		Cache:     cache,
		Metrics:   metrics,
		services:  make(map[string]interface{}),
	}
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
