package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
)

func runFleetReportRouter(secureGroup *echo.Group, equipmentService services.EquipmentServiceInterface, logger *zap.Logger) {
	reportCtrl := controllers.NewFleetReportController(equipmentService, logger)

	secureGroup.GET("/reports/fleet", reportCtrl.ExportFleet)
}
