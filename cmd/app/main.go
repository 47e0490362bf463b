package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	documentfx "tripdoc/cmd/fx/document_fx"
	mapfx "tripdoc/cmd/fx/map_fx"
	providerfx "tripdoc/cmd/fx/provider_fx"
	wizardfx "tripdoc/cmd/fx/wizard_fx"
	"tripdoc/internal/api/controllers"
	"tripdoc/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		providerfx.Module,
		wizardfx.Module,
		mapfx.Module,
		documentfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	wizardController *controllers.WizardController,
	mapController *controllers.MapController,
	documentController *controllers.DocumentController) *gin.Engine {

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, wizardController, mapController, documentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	wizardController *controllers.WizardController,
	mapController *controllers.MapController,
	documentController *controllers.DocumentController) {

	sessions := r.Group("/wizard/sessions")
	sessions.POST("", wizardController.CreateSession)
	sessions.GET("/:sessionId", wizardController.GetSession)

	sessions.POST("/:sessionId/days", wizardController.AddDay)
	sessions.DELETE("/:sessionId/days/:dayIndex", wizardController.RemoveDay)
	sessions.POST("/:sessionId/days/:dayIndex/locations", wizardController.AddLocation)
	sessions.DELETE("/:sessionId/days/:dayIndex/locations/:locationIndex", wizardController.RemoveLocation)
	sessions.PATCH("/:sessionId/days/:dayIndex/locations/:locationIndex", wizardController.UpdateLocationField)

	sessions.POST("/:sessionId/submit", wizardController.Submit)
	sessions.POST("/:sessionId/back", wizardController.Back)
	sessions.POST("/:sessionId/reset", wizardController.Reset)
	sessions.POST("/:sessionId/retry", wizardController.Retry)

	sessions.POST("/:sessionId/images/select", wizardController.SelectImage)
	sessions.PUT("/:sessionId/introductions", wizardController.EditIntroduction)

	sessions.GET("/:sessionId/document", documentController.GetDocument)
	sessions.PUT("/:sessionId/document", documentController.UpdateDocument)
	sessions.GET("/:sessionId/document/pdf", documentController.ExportPDF)

	sessions.GET("/:sessionId/map", mapController.GetMap)
	sessions.GET("/:sessionId/map/locations/:label", mapController.GetLocationDetail)

	r.GET("/places/suggest", mapController.Suggest)
}
