package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	"fleet-system/pkg/utils"
)

type PilotController struct {
	pilotService services.PilotServiceInterface
	logger       *zap.Logger
}

func NewPilotController(pilotService services.PilotServiceInterface, logger *zap.Logger) *PilotController {
	return &PilotController{pilotService: pilotService, logger: logger}
}

func (c *PilotController) GetPilots(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	list, total, err := c.pilotService.GetPilots(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, list, "Pilotos listados com sucesso", http.StatusOK, total)
}

func (c *PilotController) FindPilot(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.pilotService.FindPilot(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Piloto encontrado", http.StatusOK)
}

func (c *PilotController) CreatePilot(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreatePilotDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreatePilot: requisição inválida", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.pilotService.CreatePilot(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Piloto criado com sucesso", http.StatusCreated)
}

func (c *PilotController) UpdatePilot(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdatePilotDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.pilotService.UpdatePilot(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Piloto atualizado com sucesso", http.StatusOK)
}

func (c *PilotController) DeletePilot(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.pilotService.DeletePilot(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Piloto excluído com sucesso", http.StatusOK)
}
