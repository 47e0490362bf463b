package wizardfx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"tripdoc/internal/api/controllers"
	"tripdoc/internal/providers"
	"tripdoc/internal/services"
	"tripdoc/internal/wizard"
)

var Module = fx.Provide(
	provideSessionStore,
	provideImageService,
	provideIntroductionService,
	provideWizardService,
	provideWizardController)

func provideSessionStore() wizard.Store {
	ttl := 120 * time.Minute
	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			ttl = time.Duration(minutes) * time.Minute
		}
	}
	return wizard.NewMemoryStore(ttl)
}

func provideImageService(searcher providers.ImageSearcher) services.ImageServiceInterface {
	return services.NewImageService(searcher)
}

func provideIntroductionService(generator providers.IntroductionGenerator) services.IntroductionServiceInterface {
	return services.NewIntroductionService(generator)
}

func provideWizardService(
	store wizard.Store,
	imageSvc services.ImageServiceInterface,
	introSvc services.IntroductionServiceInterface) services.WizardServiceInterface {

	return services.NewWizardService(store, imageSvc, introSvc)
}

func provideWizardController(wizardService services.WizardServiceInterface) *controllers.WizardController {
	return controllers.NewWizardController(wizardService)
}
