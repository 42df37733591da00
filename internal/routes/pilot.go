package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
)

func runPilotRouter(secureGroup *echo.Group, pilotService services.PilotServiceInterface, logger *zap.Logger) {
	pilotCtrl := controllers.NewPilotController(pilotService, logger)

	pilotGroup := secureGroup.Group("/pilots")
	{
		pilotGroup.GET("", pilotCtrl.GetPilots)
		pilotGroup.GET("/:id", pilotCtrl.FindPilot)
		pilotGroup.POST("", pilotCtrl.CreatePilot)
		pilotGroup.PUT("/:id", pilotCtrl.UpdatePilot)
		pilotGroup.DELETE("/:id", pilotCtrl.DeletePilot)
	}
}
