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

type EquipmentAccessoryController struct {
	accessoryService services.EquipmentAccessoryServiceInterface
	logger           *zap.Logger
}

func NewEquipmentAccessoryController(
	accessoryService services.EquipmentAccessoryServiceInterface,
	logger *zap.Logger,
) *EquipmentAccessoryController {
	return &EquipmentAccessoryController{
		accessoryService: accessoryService,
		logger:           logger,
	}
}

func (c *EquipmentAccessoryController) ListByParent(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	parentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.accessoryService.ListByParent(reqCtx, parentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Acessórios listados com sucesso", http.StatusOK)
}

func (c *EquipmentAccessoryController) ListAvailableTargets(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	parentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.accessoryService.ListAvailableTargets(reqCtx, parentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipamentos disponíveis listados com sucesso", http.StatusOK)
}

func (c *EquipmentAccessoryController) CreateLink(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	parentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateEquipmentAccessoryDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateLink: requisição inválida", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.accessoryService.CreateLink(reqCtx, parentID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Acessório vinculado com sucesso", http.StatusCreated)
}

func (c *EquipmentAccessoryController) DeleteLink(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.accessoryService.DeleteLink(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Vínculo removido com sucesso", http.StatusOK)
}
