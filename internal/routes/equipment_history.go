package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
	"fleet-system/pkg/middleware"
)

func runEquipmentHistoryRouter(
	secureGroup *echo.Group,
	historyService services.EquipmentHistoryServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	historyCtrl := controllers.NewEquipmentHistoryController(historyService, logger)

	// O histórico de exclusões é visível apenas para administradores.
	secureGroup.GET("/equipment-history", historyCtrl.GetHistory, authMW.RequireAdmin)
}
