package mapfx

import (
	"go.uber.org/fx"

	"tripdoc/internal/api/controllers"
	"tripdoc/internal/providers"
	"tripdoc/internal/services"
)

var Module = fx.Provide(
	provideMapService, provideMapController)

func provideMapService(mapper providers.Mapper) services.MapServiceInterface {
	return services.NewMapService(mapper)
}

func provideMapController(
	mapService services.MapServiceInterface,
	wizardService services.WizardServiceInterface) *controllers.MapController {

	return controllers.NewMapController(mapService, wizardService)
}
