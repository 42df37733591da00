package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
)

func runAccessoryCatalogRouter(
	secureGroup *echo.Group,
	catalogService services.AccessoryCatalogServiceInterface,
	logger *zap.Logger,
) {
	catalogCtrl := controllers.NewAccessoryCatalogController(catalogService, logger)

	catalogGroup := secureGroup.Group("/accessory-catalog")
	{
		catalogGroup.GET("", catalogCtrl.GetCatalog)
		catalogGroup.POST("", catalogCtrl.CreateEntry)
	}

	secureGroup.GET("/equipment-models", catalogCtrl.GetEquipmentModels)
}
