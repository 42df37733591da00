package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fleet-system/internal/compat"
	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
)

type AccessoryCatalogServiceInterface interface {
	ListByBrand(ctx context.Context, brand string, parentEquipmentID *uint64) (*dto.AccessoryCatalogListDTO, error)
	CreateEntry(ctx context.Context, payload dto.CreateAccessoryCatalogDTO) (*dto.AccessoryCatalogDTO, error)
}

type AccessoryCatalogService struct {
	txManager     repositories.TxManagerInterface
	catalogRepo   repositories.AccessoryCatalogRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewAccessoryCatalogService(
	txManager repositories.TxManagerInterface,
	catalogRepo repositories.AccessoryCatalogRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) AccessoryCatalogServiceInterface {
	return &AccessoryCatalogService{
		txManager:     txManager,
		catalogRepo:   catalogRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func mapCatalogToDTO(entry entities.AccessoryCatalog) dto.AccessoryCatalogDTO {
	return dto.AccessoryCatalogDTO{
		ID:                 entry.ID,
		Brand:              entry.Brand,
		Category:           entry.Category,
		Subcategory:        entry.Subcategory,
		Name:               entry.Name,
		Description:        entry.Description,
		ModelCompatibility: entry.ModelCompatibility,
	}
}

func mapCatalogToShortDTO(entry entities.AccessoryCatalog) dto.ShortAccessoryCatalogDTO {
	return dto.ShortAccessoryCatalogDTO{
		ID:          entry.ID,
		Name:        entry.Name,
		Brand:       entry.Brand,
		Category:    entry.Category,
		Subcategory: entry.Subcategory,
	}
}

// ListByBrand lista o catálogo de uma marca. Quando o equipamento pai é
// informado, o modelo dele filtra as entradas via resolvedor de
// compatibilidade; entradas sem lista de compatibilidade sempre passam.
func (s *AccessoryCatalogService) ListByBrand(ctx context.Context, brand string, parentEquipmentID *uint64) (*dto.AccessoryCatalogListDTO, error) {
	entries, err := s.catalogRepo.GetByBrand(ctx, brand)
	if err != nil {
		s.logger.Error("ListByBrand: erro ao consultar o catálogo",
			zap.String("brand", brand), zap.Error(err))
		return nil, err
	}

	parentModel := ""
	if parentEquipmentID != nil {
		parent, err := s.equipmentRepo.FindEquipment(ctx, *parentEquipmentID)
		if err != nil {
			return nil, err
		}
		if parent.Model != nil {
			parentModel = *parent.Model
		}
	}

	result := &dto.AccessoryCatalogListDTO{
		Brand:      brand,
		Categories: []string{},
		Entries:    []dto.AccessoryCatalogDTO{},
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		if !compat.IsAccessoryCompatible(entry.ModelCompatibility, parentModel) {
			continue
		}
		if !seen[entry.Category] {
			seen[entry.Category] = true
			result.Categories = append(result.Categories, entry.Category)
		}
		result.Entries = append(result.Entries, mapCatalogToDTO(entry))
	}

	return result, nil
}

func (s *AccessoryCatalogService) CreateEntry(ctx context.Context, payload dto.CreateAccessoryCatalogDTO) (*dto.AccessoryCatalogDTO, error) {
	entry := entities.AccessoryCatalog{
		Brand:              payload.Brand,
		Category:           payload.Category,
		Subcategory:        payload.Subcategory,
		Name:               payload.Name,
		Description:        payload.Description,
		ModelCompatibility: payload.ModelCompatibility,
	}

	var newID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.catalogRepo.CreateEntry(ctx, tx, entry)
		if err != nil {
			return err
		}
		newID = id
		return nil
	})
	if err != nil {
		s.logger.Error("CreateEntry: erro ao criar entrada do catálogo", zap.Error(err))
		return nil, err
	}

	created, err := s.catalogRepo.FindEntry(ctx, newID)
	if err != nil {
		return nil, err
	}

	result := mapCatalogToDTO(*created)
	return &result, nil
}
