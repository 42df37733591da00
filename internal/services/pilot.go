package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	"fleet-system/pkg/types"
)

type PilotServiceInterface interface {
	GetPilots(ctx context.Context, filter types.Filter) ([]dto.PilotDTO, uint64, error)
	FindPilot(ctx context.Context, id uint64) (*dto.PilotDTO, error)
	CreatePilot(ctx context.Context, payload dto.CreatePilotDTO) (*dto.PilotDTO, error)
	UpdatePilot(ctx context.Context, id uint64, payload dto.UpdatePilotDTO) (*dto.PilotDTO, error)
	DeletePilot(ctx context.Context, id uint64) error
}

type PilotService struct {
	pilotRepo repositories.PilotRepositoryInterface
	logger    *zap.Logger
}

func NewPilotService(pilotRepo repositories.PilotRepositoryInterface, logger *zap.Logger) PilotServiceInterface {
	return &PilotService{pilotRepo: pilotRepo, logger: logger}
}

func mapPilotToDTO(p entities.Pilot) dto.PilotDTO {
	out := dto.PilotDTO{
		ID:            p.ID,
		Name:          p.Name,
		LicenseNumber: p.LicenseNumber,
		Phone:         p.Phone,
		Email:         p.Email,
		Status:        p.Status,
	}
	if p.CreatedAt != nil {
		out.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

func (s *PilotService) GetPilots(ctx context.Context, filter types.Filter) ([]dto.PilotDTO, uint64, error) {
	pilots, total, err := s.pilotRepo.GetPilots(ctx, filter)
	if err != nil {
		s.logger.Error("GetPilots: erro ao listar pilotos", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.PilotDTO, 0, len(pilots))
	for _, p := range pilots {
		result = append(result, mapPilotToDTO(p))
	}
	return result, total, nil
}

func (s *PilotService) FindPilot(ctx context.Context, id uint64) (*dto.PilotDTO, error) {
	pilot, err := s.pilotRepo.FindPilot(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapPilotToDTO(*pilot)
	return &result, nil
}

func (s *PilotService) CreatePilot(ctx context.Context, payload dto.CreatePilotDTO) (*dto.PilotDTO, error) {
	pilot := entities.Pilot{
		Name:          payload.Name,
		LicenseNumber: payload.LicenseNumber,
		Phone:         payload.Phone,
		Email:         payload.Email,
		Status:        payload.Status,
	}
	if pilot.Status == "" {
		pilot.Status = constants.PilotStatusActive
	}

	newID, err := s.pilotRepo.CreatePilot(ctx, pilot)
	if err != nil {
		s.logger.Error("CreatePilot: erro ao criar piloto", zap.Error(err))
		return nil, err
	}

	return s.FindPilot(ctx, newID)
}

func (s *PilotService) UpdatePilot(ctx context.Context, id uint64, payload dto.UpdatePilotDTO) (*dto.PilotDTO, error) {
	current, err := s.pilotRepo.FindPilot(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		current.Name = *payload.Name
	}
	if payload.LicenseNumber != nil {
		current.LicenseNumber = payload.LicenseNumber
	}
	if payload.Phone != nil {
		current.Phone = payload.Phone
	}
	if payload.Email != nil {
		current.Email = payload.Email
	}
	if payload.Status != nil {
		current.Status = *payload.Status
	}

	if err := s.pilotRepo.UpdatePilot(ctx, id, *current); err != nil {
		s.logger.Error("UpdatePilot: erro ao atualizar piloto", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return s.FindPilot(ctx, id)
}

func (s *PilotService) DeletePilot(ctx context.Context, id uint64) error {
	if err := s.pilotRepo.DeletePilot(ctx, id); err != nil {
		s.logger.Error("DeletePilot: erro ao excluir piloto", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
