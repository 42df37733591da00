package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	"fleet-system/pkg/contextkeys"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"
)

const dateLayout = "2006-01-02"

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	txManager     repositories.TxManagerInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	sequenceRepo  repositories.SequenceRepositoryInterface
	historyRepo   repositories.EquipmentHistoryRepositoryInterface
	accessoryRepo repositories.EquipmentAccessoryRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	txManager repositories.TxManagerInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	sequenceRepo repositories.SequenceRepositoryInterface,
	historyRepo repositories.EquipmentHistoryRepositoryInterface,
	accessoryRepo repositories.EquipmentAccessoryRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		txManager:     txManager,
		equipmentRepo: equipmentRepo,
		sequenceRepo:  sequenceRepo,
		historyRepo:   historyRepo,
		accessoryRepo: accessoryRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// FormatSequence padroniza a exibição do número sequencial (#0001).
func FormatSequence(sequenceNumber uint64) string {
	return fmt.Sprintf("#%04d", sequenceNumber)
}

func mapEquipmentToDTO(e entities.Equipment) dto.EquipmentDTO {
	out := dto.EquipmentDTO{
		ID:                 e.ID,
		SequenceNumber:     e.SequenceNumber,
		SequenceDisplay:    FormatSequence(e.SequenceNumber),
		Name:               e.Name,
		EquipmentType:      e.EquipmentType,
		SerialNumber:       e.SerialNumber,
		SisantRegistration: e.SisantRegistration,
		Manufacturer:       e.Manufacturer,
		Model:              e.Model,
		Status:             e.Status,
		Location:           e.Location,
		ResponsibleUser:    e.ResponsibleUser,
		Observations:       e.Observations,
	}
	if e.AcquisitionDate != nil {
		formatted := e.AcquisitionDate.Format(dateLayout)
		out.AcquisitionDate = &formatted
	}
	if e.Value != nil {
		out.Value = null.Float64From(*e.Value)
	}
	if e.CreatedAt != nil {
		out.CreatedAt = e.CreatedAt.Format(time.RFC3339)
	}
	if e.UpdatedAt != nil {
		out.UpdatedAt = e.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

func mapEquipmentToShortDTO(e entities.Equipment) dto.ShortEquipmentDTO {
	return dto.ShortEquipmentDTO{
		ID:            e.ID,
		Name:          e.Name,
		EquipmentType: e.EquipmentType,
		SerialNumber:  e.SerialNumber,
		Model:         e.Model,
		Status:        e.Status,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	list, total, err := s.equipmentRepo.GetEquipments(ctx, filter)
	if err != nil {
		s.logger.Error("GetEquipments: erro ao listar equipamentos", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EquipmentDTO, 0, len(list))
	for _, e := range list {
		result = append(result, mapEquipmentToDTO(e))
	}
	return result, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapEquipmentToDTO(*equipment)
	return &result, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment := entities.Equipment{
		Name:               payload.Name,
		EquipmentType:      payload.EquipmentType,
		SerialNumber:       payload.SerialNumber,
		SisantRegistration: payload.SisantRegistration,
		Manufacturer:       payload.Manufacturer,
		Model:              payload.Model,
		Status:             payload.Status,
		Location:           payload.Location,
		ResponsibleUser:    payload.ResponsibleUser,
		Observations:       payload.Observations,
	}
	if equipment.Status == "" {
		equipment.Status = constants.EquipmentStatusActive
	}
	if payload.AcquisitionDate != nil {
		parsed, err := time.Parse(dateLayout, *payload.AcquisitionDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("data de aquisição inválida: %s", *payload.AcquisitionDate)
		}
		equipment.AcquisitionDate = &parsed
	}
	if payload.Value.Valid {
		equipment.Value = &payload.Value.Float64
	}

	var newID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		sequenceNumber, err := s.sequenceRepo.NextSequenceNumber(ctx, tx)
		if err != nil {
			return fmt.Errorf("erro ao alocar número sequencial: %w", err)
		}
		equipment.SequenceNumber = sequenceNumber

		newID, err = s.equipmentRepo.CreateEquipment(ctx, tx, equipment)
		return err
	})
	if err != nil {
		s.logger.Error("CreateEquipment: erro ao criar equipamento", zap.Error(err))
		return nil, err
	}

	s.logger.Info("CreateEquipment: equipamento criado",
		zap.Uint64("id", newID),
		zap.Uint64("sequenceNumber", equipment.SequenceNumber))

	return s.FindEquipment(ctx, newID)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	current, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		current.Name = *payload.Name
	}
	if payload.EquipmentType != nil {
		current.EquipmentType = *payload.EquipmentType
	}
	if payload.SerialNumber != nil {
		current.SerialNumber = payload.SerialNumber
	}
	if payload.SisantRegistration != nil {
		current.SisantRegistration = payload.SisantRegistration
	}
	if payload.Manufacturer != nil {
		current.Manufacturer = payload.Manufacturer
	}
	if payload.Model != nil {
		current.Model = payload.Model
	}
	if payload.Status != nil {
		current.Status = *payload.Status
	}
	if payload.AcquisitionDate != nil {
		parsed, err := time.Parse(dateLayout, *payload.AcquisitionDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("data de aquisição inválida: %s", *payload.AcquisitionDate)
		}
		current.AcquisitionDate = &parsed
	}
	if payload.Value.Valid {
		current.Value = &payload.Value.Float64
	}
	if payload.Location != nil {
		current.Location = payload.Location
	}
	if payload.ResponsibleUser != nil {
		current.ResponsibleUser = payload.ResponsibleUser
	}
	if payload.Observations != nil {
		current.Observations = payload.Observations
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, id, *current); err != nil {
		s.logger.Error("UpdateEquipment: erro ao atualizar equipamento", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return s.FindEquipment(ctx, id)
}

// DeleteEquipment grava o snapshot no histórico, remove os vínculos em que o
// equipamento aparece como pai ou como alvo e então apaga a linha — tudo na
// mesma transação.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return err
	}

	deletedBy := s.resolveDeletedBy(ctx)

	record := entities.EquipmentHistory{
		OriginalEquipmentID: equipment.ID,
		SequenceNumber:      equipment.SequenceNumber,
		Name:                equipment.Name,
		EquipmentType:       equipment.EquipmentType,
		SerialNumber:        equipment.SerialNumber,
		SisantRegistration:  equipment.SisantRegistration,
		Manufacturer:        equipment.Manufacturer,
		Model:               equipment.Model,
		Status:              &equipment.Status,
		AcquisitionDate:     equipment.AcquisitionDate,
		Value:               equipment.Value,
		Location:            equipment.Location,
		ResponsibleUser:     equipment.ResponsibleUser,
		Observations:        equipment.Observations,
		DeletedAt:           time.Now(),
		DeletedBy:           deletedBy,
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.historyRepo.CreateInTx(ctx, tx, record); err != nil {
			return fmt.Errorf("erro ao gravar o histórico: %w", err)
		}
		if err := s.accessoryRepo.DeleteByEquipment(ctx, tx, id); err != nil {
			return fmt.Errorf("erro ao remover os vínculos de acessórios: %w", err)
		}
		return s.equipmentRepo.DeleteEquipment(ctx, tx, id)
	})
	if err != nil {
		s.logger.Error("DeleteEquipment: erro ao excluir equipamento", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("DeleteEquipment: equipamento excluído e arquivado",
		zap.Uint64("id", id),
		zap.Uint64("sequenceNumber", equipment.SequenceNumber))
	return nil
}

// resolveDeletedBy identifica o autor da exclusão a partir do contexto; uma
// falha aqui nunca bloqueia a exclusão, o campo apenas fica vazio.
func (s *EquipmentService) resolveDeletedBy(ctx context.Context) *string {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		return nil
	}

	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		s.logger.Warn("resolveDeletedBy: usuário do contexto não encontrado",
			zap.Uint64("userId", userID), zap.Error(err))
		return nil
	}
	return &user.Name
}
