package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/types"
)

type EquipmentHistoryServiceInterface interface {
	GetHistory(ctx context.Context, filter types.Filter) ([]dto.EquipmentHistoryDTO, uint64, error)
}

type EquipmentHistoryService struct {
	historyRepo repositories.EquipmentHistoryRepositoryInterface
	logger      *zap.Logger
}

func NewEquipmentHistoryService(
	historyRepo repositories.EquipmentHistoryRepositoryInterface,
	logger *zap.Logger,
) EquipmentHistoryServiceInterface {
	return &EquipmentHistoryService{historyRepo: historyRepo, logger: logger}
}

func mapHistoryToDTO(record entities.EquipmentHistory) dto.EquipmentHistoryDTO {
	out := dto.EquipmentHistoryDTO{
		ID:                  record.ID,
		OriginalEquipmentID: record.OriginalEquipmentID,
		SequenceNumber:      record.SequenceNumber,
		SequenceDisplay:     FormatSequence(record.SequenceNumber),
		Name:                record.Name,
		EquipmentType:       record.EquipmentType,
		SerialNumber:        record.SerialNumber,
		SisantRegistration:  record.SisantRegistration,
		Manufacturer:        record.Manufacturer,
		Model:               record.Model,
		Status:              record.Status,
		Location:            record.Location,
		ResponsibleUser:     record.ResponsibleUser,
		Observations:        record.Observations,
		DeletedAt:           record.DeletedAt.Format(time.RFC3339),
		DeletedBy:           record.DeletedBy,
	}
	if record.AcquisitionDate != nil {
		formatted := record.AcquisitionDate.Format(dateLayout)
		out.AcquisitionDate = &formatted
	}
	if record.Value != nil {
		out.Value = null.Float64From(*record.Value)
	}
	return out
}

func (s *EquipmentHistoryService) GetHistory(ctx context.Context, filter types.Filter) ([]dto.EquipmentHistoryDTO, uint64, error) {
	records, total, err := s.historyRepo.GetHistory(ctx, filter)
	if err != nil {
		s.logger.Error("GetHistory: erro ao listar o histórico", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EquipmentHistoryDTO, 0, len(records))
	for _, record := range records {
		result = append(result, mapHistoryToDTO(record))
	}
	return result, total, nil
}
