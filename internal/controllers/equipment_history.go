package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/services"
	"fleet-system/pkg/utils"
)

type EquipmentHistoryController struct {
	historyService services.EquipmentHistoryServiceInterface
	logger         *zap.Logger
}

func NewEquipmentHistoryController(
	historyService services.EquipmentHistoryServiceInterface,
	logger *zap.Logger,
) *EquipmentHistoryController {
	return &EquipmentHistoryController{
		historyService: historyService,
		logger:         logger,
	}
}

func (c *EquipmentHistoryController) GetHistory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	list, total, err := c.historyService.GetHistory(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, list, "Histórico listado com sucesso", http.StatusOK, total)
}
