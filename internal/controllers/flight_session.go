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

type FlightSessionController struct {
	sessionService services.FlightSessionServiceInterface
	logger         *zap.Logger
}

func NewFlightSessionController(
	sessionService services.FlightSessionServiceInterface,
	logger *zap.Logger,
) *FlightSessionController {
	return &FlightSessionController{
		sessionService: sessionService,
		logger:         logger,
	}
}

func (c *FlightSessionController) GetFlightSessions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	list, total, err := c.sessionService.GetFlightSessions(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, list, "Voos listados com sucesso", http.StatusOK, total)
}

func (c *FlightSessionController) FindFlightSession(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.sessionService.FindFlightSession(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Voo encontrado", http.StatusOK)
}

func (c *FlightSessionController) CreateFlightSession(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateFlightSessionDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateFlightSession: requisição inválida", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.sessionService.CreateFlightSession(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Voo registrado com sucesso", http.StatusCreated)
}

func (c *FlightSessionController) UpdateFlightSession(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateFlightSessionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.sessionService.UpdateFlightSession(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Voo atualizado com sucesso", http.StatusOK)
}

func (c *FlightSessionController) DeleteFlightSession(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.sessionService.DeleteFlightSession(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Voo excluído com sucesso", http.StatusOK)
}
