package services

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
)

type EquipmentAccessoryServiceInterface interface {
	ListByParent(ctx context.Context, parentID uint64) ([]dto.EquipmentAccessoryDTO, error)
	ListAvailableTargets(ctx context.Context, parentID uint64) ([]dto.ShortEquipmentDTO, error)
	CreateLink(ctx context.Context, parentID uint64, payload dto.CreateEquipmentAccessoryDTO) (*dto.EquipmentAccessoryDTO, error)
	DeleteLink(ctx context.Context, id uint64) error
}

type EquipmentAccessoryService struct {
	txManager     repositories.TxManagerInterface
	accessoryRepo repositories.EquipmentAccessoryRepositoryInterface
	catalogRepo   repositories.AccessoryCatalogRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentAccessoryService(
	txManager repositories.TxManagerInterface,
	accessoryRepo repositories.EquipmentAccessoryRepositoryInterface,
	catalogRepo repositories.AccessoryCatalogRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) EquipmentAccessoryServiceInterface {
	return &EquipmentAccessoryService{
		txManager:     txManager,
		accessoryRepo: accessoryRepo,
		catalogRepo:   catalogRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func mapAccessoryLinkToDTO(link entities.EquipmentAccessory) dto.EquipmentAccessoryDTO {
	out := dto.EquipmentAccessoryDTO{
		ID:            link.ID,
		AccessoryType: link.AccessoryType,
		Quantity:      link.Quantity,
		Notes:         link.Notes,
	}
	if link.CatalogEntry != nil {
		short := mapCatalogToShortDTO(*link.CatalogEntry)
		out.CatalogEntry = &short
	}
	if link.TargetEquipment != nil {
		short := mapEquipmentToShortDTO(*link.TargetEquipment)
		out.TargetEquipment = &short
	}
	return out
}

func (s *EquipmentAccessoryService) ListByParent(ctx context.Context, parentID uint64) ([]dto.EquipmentAccessoryDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, parentID); err != nil {
		return nil, err
	}

	links, err := s.accessoryRepo.ListByParent(ctx, parentID)
	if err != nil {
		s.logger.Error("ListByParent: erro ao listar acessórios",
			zap.Uint64("parentId", parentID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EquipmentAccessoryDTO, 0, len(links))
	for _, link := range links {
		result = append(result, mapAccessoryLinkToDTO(link))
	}
	return result, nil
}

// ListAvailableTargets devolve os equipamentos que ainda podem ser vinculados
// como acessório deste pai: todos menos o próprio pai e menos os já
// vinculados. Recalculado a cada chamada, nada fica em cache.
func (s *EquipmentAccessoryService) ListAvailableTargets(ctx context.Context, parentID uint64) ([]dto.ShortEquipmentDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, parentID); err != nil {
		return nil, err
	}

	targets, err := s.accessoryRepo.ListAvailableTargets(ctx, parentID)
	if err != nil {
		s.logger.Error("ListAvailableTargets: erro ao listar candidatos",
			zap.Uint64("parentId", parentID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShortEquipmentDTO, 0, len(targets))
	for _, target := range targets {
		result = append(result, mapEquipmentToShortDTO(target))
	}
	return result, nil
}

// CreateLink valida a seleção etiquetada antes de qualquer persistência.
// No caminho de texto livre, a entrada do catálogo e o vínculo nascem na
// mesma transação.
func (s *EquipmentAccessoryService) CreateLink(ctx context.Context, parentID uint64, payload dto.CreateEquipmentAccessoryDTO) (*dto.EquipmentAccessoryDTO, error) {
	parent, err := s.equipmentRepo.FindEquipment(ctx, parentID)
	if err != nil {
		return nil, err
	}

	if payload.Quantity < 1 {
		return nil, apperrors.NewInvalidInputError("a quantidade deve ser no mínimo 1")
	}

	link := entities.EquipmentAccessory{
		ParentEquipmentID: parentID,
		AccessoryType:     payload.AccessoryType,
		Quantity:          payload.Quantity,
		Notes:             payload.Notes,
	}

	var freeTextEntry *entities.AccessoryCatalog

	switch payload.AccessoryType {
	case constants.AccessoryTypeEquipment:
		if payload.AccessoryEquipmentID == nil {
			return nil, apperrors.NewInvalidInputError("selecione o equipamento a vincular")
		}
		if *payload.AccessoryEquipmentID == parentID {
			return nil, apperrors.NewInvalidInputError("um equipamento não pode ser acessório de si mesmo")
		}
		if _, err := s.equipmentRepo.FindEquipment(ctx, *payload.AccessoryEquipmentID); err != nil {
			return nil, err
		}
		link.AccessoryEquipmentID = payload.AccessoryEquipmentID

	case constants.AccessoryTypeCatalog:
		switch {
		case payload.AccessoryCatalogID != nil:
			if _, err := s.catalogRepo.FindEntry(ctx, *payload.AccessoryCatalogID); err != nil {
				return nil, err
			}
			link.AccessoryCatalogID = payload.AccessoryCatalogID

		case payload.CustomName != nil && strings.TrimSpace(*payload.CustomName) != "":
			if payload.CustomCategory == nil || strings.TrimSpace(*payload.CustomCategory) == "" {
				return nil, apperrors.NewInvalidInputError("informe a categoria do acessório avulso")
			}
			freeTextEntry = s.buildFreeTextEntry(parent, payload)

		default:
			return nil, apperrors.NewInvalidInputError("selecione um item do catálogo ou informe o nome do acessório")
		}

	default:
		return nil, apperrors.NewInvalidInputError("tipo de acessório inválido: %s", payload.AccessoryType)
	}

	var newID uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if freeTextEntry != nil {
			entryID, err := s.catalogRepo.CreateEntry(ctx, tx, *freeTextEntry)
			if err != nil {
				return err
			}
			link.AccessoryCatalogID = &entryID
		}

		id, err := s.accessoryRepo.CreateLink(ctx, tx, link)
		if err != nil {
			return err
		}
		newID = id
		return nil
	})
	if err != nil {
		s.logger.Error("CreateLink: erro ao criar vínculo",
			zap.Uint64("parentId", parentID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("CreateLink: vínculo criado",
		zap.Uint64("id", newID),
		zap.Uint64("parentId", parentID),
		zap.String("accessoryType", link.AccessoryType))

	links, err := s.accessoryRepo.ListByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	for _, created := range links {
		if created.ID == newID {
			result := mapAccessoryLinkToDTO(created)
			return &result, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *EquipmentAccessoryService) DeleteLink(ctx context.Context, id uint64) error {
	if err := s.accessoryRepo.DeleteLink(ctx, id); err != nil {
		s.logger.Error("DeleteLink: erro ao remover vínculo", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// buildFreeTextEntry materializa o acessório digitado como entrada do
// catálogo. A compatibilidade nasce restrita ao modelo do equipamento pai;
// sem modelo conhecido a entrada fica aberta a todos.
func (s *EquipmentAccessoryService) buildFreeTextEntry(parent *entities.Equipment, payload dto.CreateEquipmentAccessoryDTO) *entities.AccessoryCatalog {
	entry := &entities.AccessoryCatalog{
		Name:     strings.TrimSpace(*payload.CustomName),
		Category: strings.TrimSpace(*payload.CustomCategory),
	}

	if payload.CustomBrand != nil && strings.TrimSpace(*payload.CustomBrand) != "" {
		entry.Brand = strings.TrimSpace(*payload.CustomBrand)
	} else if parent.Manufacturer != nil {
		entry.Brand = *parent.Manufacturer
	}

	if parent.Model != nil && *parent.Model != "" {
		entry.ModelCompatibility = []string{*parent.Model}
	}

	return entry
}
