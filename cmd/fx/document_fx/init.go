package documentfx

import (
	"os"

	"go.uber.org/fx"

	"tripdoc/internal/api/controllers"
	"tripdoc/internal/services"
)

var Module = fx.Provide(
	provideDocumentService,
	provideExportService,
	provideDocumentController)

func provideDocumentService() services.DocumentServiceInterface {
	return services.NewDocumentService()
}

// provideExportService reads PDF_UNICODE_FONT, the path of a TTF embedded
// for CJK-capable exports; unset means the Latin-1 fallback.
func provideExportService() services.ExportServiceInterface {
	return services.NewExportService(os.Getenv("PDF_UNICODE_FONT"))
}

func provideDocumentController(
	documentService services.DocumentServiceInterface,
	exportService services.ExportServiceInterface,
	wizardService services.WizardServiceInterface) *controllers.DocumentController {

	return controllers.NewDocumentController(documentService, exportService, wizardService)
}
