package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
)

func runFlightSessionRouter(secureGroup *echo.Group, sessionService services.FlightSessionServiceInterface, logger *zap.Logger) {
	sessionCtrl := controllers.NewFlightSessionController(sessionService, logger)

	sessionGroup := secureGroup.Group("/flight-sessions")
	{
		sessionGroup.GET("", sessionCtrl.GetFlightSessions)
		sessionGroup.GET("/:id", sessionCtrl.FindFlightSession)
		sessionGroup.POST("", sessionCtrl.CreateFlightSession)
		sessionGroup.PUT("/:id", sessionCtrl.UpdateFlightSession)
		sessionGroup.DELETE("/:id", sessionCtrl.DeleteFlightSession)
	}
}
