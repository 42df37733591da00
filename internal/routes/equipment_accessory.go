package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
)

func runEquipmentAccessoryRouter(
	secureGroup *echo.Group,
	accessoryService services.EquipmentAccessoryServiceInterface,
	logger *zap.Logger,
) {
	accessoryCtrl := controllers.NewEquipmentAccessoryController(accessoryService, logger)

	// A remoção do vínculo opera pelo id da própria linha de junção.
	secureGroup.DELETE("/equipment-accessories/:id", accessoryCtrl.DeleteLink)
}
