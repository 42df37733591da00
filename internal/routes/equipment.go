package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
)

func runEquipmentRouter(
	secureGroup *echo.Group,
	equipmentService services.EquipmentServiceInterface,
	accessoryService services.EquipmentAccessoryServiceInterface,
	logger *zap.Logger,
) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	accessoryCtrl := controllers.NewEquipmentAccessoryController(accessoryService, logger)

	equipmentGroup := secureGroup.Group("/equipments")
	{
		equipmentGroup.GET("", equipmentCtrl.GetEquipments)
		equipmentGroup.GET("/:id", equipmentCtrl.FindEquipment)
		equipmentGroup.POST("", equipmentCtrl.CreateEquipment)
		equipmentGroup.PUT("/:id", equipmentCtrl.UpdateEquipment)
		equipmentGroup.DELETE("/:id", equipmentCtrl.DeleteEquipment)

		// Vínculos de acessórios aninhados no equipamento pai.
		equipmentGroup.GET("/:id/accessories", accessoryCtrl.ListByParent)
		equipmentGroup.GET("/:id/available-targets", accessoryCtrl.ListAvailableTargets)
		equipmentGroup.POST("/:id/accessories", accessoryCtrl.CreateLink)
	}
}
