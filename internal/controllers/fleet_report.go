package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	"fleet-system/pkg/utils"
)

type FleetReportController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewFleetReportController(
	equipmentService services.EquipmentServiceInterface,
	logger *zap.Logger,
) *FleetReportController {
	return &FleetReportController{
		equipmentService: equipmentService,
		logger:           logger,
	}
}

var fleetReportHeaders = []interface{}{
	"Nº", "Nome", "Tipo", "Fabricante", "Modelo", "Status",
	"Nº de série", "SISANT", "Valor (R$)", "Localização", "Responsável",
}

func fleetRowToSlice(item dto.EquipmentDTO) []interface{} {
	str := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}
	var value string
	if item.Value.Valid {
		value = fmt.Sprintf("%.2f", item.Value.Float64)
	}

	return []interface{}{
		item.SequenceDisplay, item.Name, item.EquipmentType, str(item.Manufacturer),
		str(item.Model), item.Status, str(item.SerialNumber), str(item.SisantRegistration),
		value, str(item.Location), str(item.ResponsibleUser),
	}
}

// ExportFleet exporta a frota viva em XLSX, na ordem dos números sequenciais.
func (c *FleetReportController) ExportFleet(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	filter.Limit = 0 // relatório sempre cobre a frota inteira
	filter.Offset = 0

	list, _, err := c.equipmentService.GetEquipments(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return c.respondWithXLSX(ctx, list)
}

func (c *FleetReportController) respondWithXLSX(ctx echo.Context, data []dto.EquipmentDTO) error {
	f := excelize.NewFile()
	sheet := "Frota"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &fleetReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := fleetRowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "D", "E", 20)
	f.SetColWidth(sheet, "G", "H", 22)
	f.SetColWidth(sheet, "J", "K", 25)

	fileName := fmt.Sprintf("frota_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
