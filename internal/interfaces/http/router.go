package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/uom-core/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MeasureUC *usecase.MeasureUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo y conversiones de unidades de medida
	measureGroup := api.Group("/measure")
	measureHandler := NewMeasureHandler(deps.MeasureUC)
	measureGroup.Get("/dimensions", measureHandler.ListDimensions)
	measureGroup.Get("/units", measureHandler.AllowedUnits)
	measureGroup.Post("/quantity/to-base", measureHandler.QuantityToBase)
	measureGroup.Post("/quantity/from-base", measureHandler.QuantityFromBase)
	measureGroup.Post("/price/to-base", measureHandler.PriceToBase)
	measureGroup.Post("/price/from-base", measureHandler.PriceFromBase)
}
