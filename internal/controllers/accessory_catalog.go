package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/compat"
	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"
)

type AccessoryCatalogController struct {
	catalogService services.AccessoryCatalogServiceInterface
	logger         *zap.Logger
}

func NewAccessoryCatalogController(
	catalogService services.AccessoryCatalogServiceInterface,
	logger *zap.Logger,
) *AccessoryCatalogController {
	return &AccessoryCatalogController{
		catalogService: catalogService,
		logger:         logger,
	}
}

func (c *AccessoryCatalogController) GetCatalog(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	brand := ctx.QueryParam("brand")
	if brand == "" {
		return utils.ErrorResponse(ctx,
			apperrors.NewInvalidInputError("o parâmetro brand é obrigatório"), c.logger)
	}

	var parentEquipmentID *uint64
	if raw := ctx.QueryParam("parent_equipment_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx,
				apperrors.NewInvalidInputError("parent_equipment_id inválido: %s", raw), c.logger)
		}
		parentEquipmentID = &id
	}

	res, err := c.catalogService.ListByBrand(reqCtx, brand, parentEquipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Catálogo listado com sucesso", http.StatusOK)
}

func (c *AccessoryCatalogController) CreateEntry(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateAccessoryCatalogDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateEntry: requisição inválida", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.catalogService.CreateEntry(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Entrada do catálogo criada com sucesso", http.StatusCreated)
}

// GetEquipmentModels devolve o catálogo estático de modelos por fabricante
// usado no formulário de equipamento.
func (c *AccessoryCatalogController) GetEquipmentModels(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, compat.EquipmentModels, "Modelos listados com sucesso", http.StatusOK)
}
