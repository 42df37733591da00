package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"
)

type FlightSessionServiceInterface interface {
	GetFlightSessions(ctx context.Context, filter types.Filter) ([]dto.FlightSessionDTO, uint64, error)
	FindFlightSession(ctx context.Context, id uint64) (*dto.FlightSessionDTO, error)
	CreateFlightSession(ctx context.Context, payload dto.CreateFlightSessionDTO) (*dto.FlightSessionDTO, error)
	UpdateFlightSession(ctx context.Context, id uint64, payload dto.UpdateFlightSessionDTO) (*dto.FlightSessionDTO, error)
	DeleteFlightSession(ctx context.Context, id uint64) error
}

type FlightSessionService struct {
	sessionRepo   repositories.FlightSessionRepositoryInterface
	pilotRepo     repositories.PilotRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewFlightSessionService(
	sessionRepo repositories.FlightSessionRepositoryInterface,
	pilotRepo repositories.PilotRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) FlightSessionServiceInterface {
	return &FlightSessionService{
		sessionRepo:   sessionRepo,
		pilotRepo:     pilotRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func mapFlightSessionToDTO(fs entities.FlightSession) dto.FlightSessionDTO {
	out := dto.FlightSessionDTO{
		ID:           fs.ID,
		ProjectName:  fs.ProjectName,
		Location:     fs.Location,
		FlightDate:   fs.FlightDate.Format(dateLayout),
		Observations: fs.Observations,
		Pilot:        dto.ShortPilotDTO{ID: fs.PilotID},
	}
	if fs.Latitude != nil {
		out.Latitude = null.Float64From(*fs.Latitude)
	}
	if fs.Longitude != nil {
		out.Longitude = null.Float64From(*fs.Longitude)
	}
	if fs.DurationMinutes != nil {
		out.DurationMinutes = null.IntFrom(*fs.DurationMinutes)
	}
	if fs.Pilot != nil {
		out.Pilot = dto.ShortPilotDTO{ID: fs.Pilot.ID, Name: fs.Pilot.Name}
	}
	if fs.Equipment != nil {
		short := mapEquipmentToShortDTO(*fs.Equipment)
		out.Equipment = &short
	}
	if fs.CreatedAt != nil {
		out.CreatedAt = fs.CreatedAt.Format(time.RFC3339)
	}
	if fs.UpdatedAt != nil {
		out.UpdatedAt = fs.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

func (s *FlightSessionService) GetFlightSessions(ctx context.Context, filter types.Filter) ([]dto.FlightSessionDTO, uint64, error) {
	sessions, total, err := s.sessionRepo.GetFlightSessions(ctx, filter)
	if err != nil {
		s.logger.Error("GetFlightSessions: erro ao listar voos", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.FlightSessionDTO, 0, len(sessions))
	for _, fs := range sessions {
		result = append(result, mapFlightSessionToDTO(fs))
	}
	return result, total, nil
}

func (s *FlightSessionService) FindFlightSession(ctx context.Context, id uint64) (*dto.FlightSessionDTO, error) {
	session, err := s.sessionRepo.FindFlightSession(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapFlightSessionToDTO(*session)
	return &result, nil
}

func (s *FlightSessionService) CreateFlightSession(ctx context.Context, payload dto.CreateFlightSessionDTO) (*dto.FlightSessionDTO, error) {
	if _, err := s.pilotRepo.FindPilot(ctx, payload.PilotID); err != nil {
		return nil, err
	}
	if payload.EquipmentID != nil {
		if _, err := s.equipmentRepo.FindEquipment(ctx, *payload.EquipmentID); err != nil {
			return nil, err
		}
	}

	flightDate, err := time.Parse(dateLayout, payload.FlightDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("data do voo inválida: %s", payload.FlightDate)
	}

	session := entities.FlightSession{
		ProjectName:  payload.ProjectName,
		PilotID:      payload.PilotID,
		EquipmentID:  payload.EquipmentID,
		Location:     payload.Location,
		FlightDate:   flightDate,
		Observations: payload.Observations,
	}
	if payload.Latitude.Valid {
		session.Latitude = &payload.Latitude.Float64
	}
	if payload.Longitude.Valid {
		session.Longitude = &payload.Longitude.Float64
	}
	if payload.DurationMinutes.Valid {
		duration := payload.DurationMinutes.Int
		session.DurationMinutes = &duration
	}

	newID, err := s.sessionRepo.CreateFlightSession(ctx, session)
	if err != nil {
		s.logger.Error("CreateFlightSession: erro ao registrar voo", zap.Error(err))
		return nil, err
	}

	return s.FindFlightSession(ctx, newID)
}

func (s *FlightSessionService) UpdateFlightSession(ctx context.Context, id uint64, payload dto.UpdateFlightSessionDTO) (*dto.FlightSessionDTO, error) {
	current, err := s.sessionRepo.FindFlightSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.ProjectName != nil {
		current.ProjectName = *payload.ProjectName
	}
	if payload.PilotID != nil {
		if _, err := s.pilotRepo.FindPilot(ctx, *payload.PilotID); err != nil {
			return nil, err
		}
		current.PilotID = *payload.PilotID
	}
	if payload.EquipmentID != nil {
		if _, err := s.equipmentRepo.FindEquipment(ctx, *payload.EquipmentID); err != nil {
			return nil, err
		}
		current.EquipmentID = payload.EquipmentID
	}
	if payload.Location != nil {
		current.Location = payload.Location
	}
	if payload.Latitude.Valid {
		current.Latitude = &payload.Latitude.Float64
	}
	if payload.Longitude.Valid {
		current.Longitude = &payload.Longitude.Float64
	}
	if payload.FlightDate != nil {
		flightDate, err := time.Parse(dateLayout, *payload.FlightDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("data do voo inválida: %s", *payload.FlightDate)
		}
		current.FlightDate = flightDate
	}
	if payload.DurationMinutes.Valid {
		duration := payload.DurationMinutes.Int
		current.DurationMinutes = &duration
	}
	if payload.Observations != nil {
		current.Observations = payload.Observations
	}

	if err := s.sessionRepo.UpdateFlightSession(ctx, id, *current); err != nil {
		s.logger.Error("UpdateFlightSession: erro ao atualizar voo", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return s.FindFlightSession(ctx, id)
}

func (s *FlightSessionService) DeleteFlightSession(ctx context.Context, id uint64) error {
	if err := s.sessionRepo.DeleteFlightSession(ctx, id); err != nil {
		s.logger.Error("DeleteFlightSession: erro ao excluir voo", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
