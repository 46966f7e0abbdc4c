package countries

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/countryview/internal/deps"
	"github.com/joefazee/countryview/internal/logger"
)

const (
	ControllerKey = "countries_controller"
	ServiceKey    = "countries_service"
)

// Mount mounts the view, country and selection routes
func Mount(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	r.GET("/view", handler.GetView)

	countriesGroup := r.Group("/countries")
	countriesGroup.GET("", handler.GetCountries)
	countriesGroup.GET("/:country/users", handler.GetCountryUsers)

	selectionGroup := r.Group("/selection")
	selectionGroup.PUT("/gender", handler.SetGender)
	selectionGroup.POST("/country", handler.ClickCountry)
	selectionGroup.GET("/users", handler.GetSelectedUsers)
}

// InitServices registers the controller and the view service. Cached detail
// lists of a replaced batch are dropped from the cache.
func InitServices(container *deps.Container, controller *Controller, cacheTTL time.Duration) {
	container.RegisterService(ControllerKey, controller)

	svc := NewService(controller, container.Cache, cacheTTL, container.Logger, container.Metrics)
	container.RegisterService(ServiceKey, svc)

	controller.OnBatchReplaced(func(previousID string) {
		if err := svc.InvalidateBatch(context.Background(), previousID); err != nil {
			container.Logger.Warn("detail cache invalidation failed", logger.Fields{"error": err.Error()})
		}
	})
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	svc := container.GetService(ServiceKey).(Service)
	return NewHandler(svc, container.Logger)
}
