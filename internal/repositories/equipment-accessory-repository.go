package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
)

const equipmentAccessoryTable = "equipment_accessories"

type EquipmentAccessoryRepositoryInterface interface {
	ListByParent(ctx context.Context, parentID uint64) ([]entities.EquipmentAccessory, error)
	ListAvailableTargets(ctx context.Context, parentID uint64) ([]entities.Equipment, error)
	CreateLink(ctx context.Context, tx pgx.Tx, link entities.EquipmentAccessory) (uint64, error)
	DeleteLink(ctx context.Context, id uint64) error
	DeleteByEquipment(ctx context.Context, tx pgx.Tx, equipmentID uint64) error
}

type EquipmentAccessoryRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentAccessoryRepository(storage *pgxpool.Pool) EquipmentAccessoryRepositoryInterface {
	return &EquipmentAccessoryRepository{storage: storage}
}

// ListByParent devolve os vínculos do equipamento já resolvidos: a entrada
// do catálogo ou o equipamento-alvo, conforme a variante.
func (r *EquipmentAccessoryRepository) ListByParent(ctx context.Context, parentID uint64) ([]entities.EquipmentAccessory, error) {
	query := fmt.Sprintf(`
		SELECT
			ea.id, ea.parent_equipment_id, ea.accessory_type, ea.accessory_catalog_id,
			ea.accessory_equipment_id, ea.quantity, ea.notes, ea.created_at,
			ac.id, ac.name, ac.brand, ac.category, ac.subcategory,
			e.id, e.name, e.equipment_type, e.serial_number, e.model, e.status
		FROM %s ea
			LEFT JOIN accessory_catalog ac ON ea.accessory_catalog_id = ac.id
			LEFT JOIN equipments e ON ea.accessory_equipment_id = e.id
		WHERE ea.parent_equipment_id = $1
		ORDER BY ea.created_at ASC, ea.id ASC`, equipmentAccessoryTable)

	rows, err := r.storage.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []entities.EquipmentAccessory
	for rows.Next() {
		var link entities.EquipmentAccessory
		var catalogID, equipmentID sql.NullInt64
		var notes sql.NullString

		var acID sql.NullInt64
		var acName, acBrand, acCategory, acSubcategory sql.NullString

		var eqID sql.NullInt64
		var eqName, eqType, eqSerial, eqModel, eqStatus sql.NullString

		err := rows.Scan(
			&link.ID, &link.ParentEquipmentID, &link.AccessoryType, &catalogID,
			&equipmentID, &link.Quantity, &notes, &link.CreatedAt,
			&acID, &acName, &acBrand, &acCategory, &acSubcategory,
			&eqID, &eqName, &eqType, &eqSerial, &eqModel, &eqStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear equipment_accessories: %w", err)
		}

		if notes.Valid {
			link.Notes = &notes.String
		}
		if catalogID.Valid {
			id := uint64(catalogID.Int64)
			link.AccessoryCatalogID = &id
		}
		if equipmentID.Valid {
			id := uint64(equipmentID.Int64)
			link.AccessoryEquipmentID = &id
		}

		if acID.Valid {
			entry := entities.AccessoryCatalog{
				ID:       uint64(acID.Int64),
				Name:     acName.String,
				Brand:    acBrand.String,
				Category: acCategory.String,
			}
			if acSubcategory.Valid {
				entry.Subcategory = &acSubcategory.String
			}
			link.CatalogEntry = &entry
		}

		if eqID.Valid {
			target := entities.Equipment{
				ID:            uint64(eqID.Int64),
				Name:          eqName.String,
				EquipmentType: eqType.String,
				Status:        eqStatus.String,
			}
			if eqSerial.Valid {
				target.SerialNumber = &eqSerial.String
			}
			if eqModel.Valid {
				target.Model = &eqModel.String
			}
			link.TargetEquipment = &target
		}

		links = append(links, link)
	}
	return links, rows.Err()
}

// ListAvailableTargets devolve os equipamentos que ainda podem ser montados
// como acessório do pai: todos menos o próprio pai e menos os já vinculados
// a ele. Sempre recalculado, nunca cacheado — outros usuários editam
// vínculos concorrentemente.
func (r *EquipmentAccessoryRepository) ListAvailableTargets(ctx context.Context, parentID uint64) ([]entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM equipments e
		WHERE e.id <> $1
			AND e.id NOT IN (
				SELECT ea.accessory_equipment_id FROM %s ea
				WHERE ea.parent_equipment_id = $1
					AND ea.accessory_type = 'equipment'
					AND ea.accessory_equipment_id IS NOT NULL
			)
		ORDER BY e.name ASC`, equipmentFields, equipmentAccessoryTable)

	rows, err := r.storage.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func (r *EquipmentAccessoryRepository) CreateLink(ctx context.Context, tx pgx.Tx, link entities.EquipmentAccessory) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (parent_equipment_id, accessory_type, accessory_catalog_id, accessory_equipment_id, quantity, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, equipmentAccessoryTable)

	var q querier = r.storage
	if tx != nil {
		q = tx
	}

	var id uint64
	err := q.QueryRow(ctx, query,
		link.ParentEquipmentID,
		link.AccessoryType,
		link.AccessoryCatalogID,
		link.AccessoryEquipmentID,
		link.Quantity,
		link.Notes,
	).Scan(&id)
	if err != nil {
		return 0, translateConstraint(err)
	}

	return id, nil
}

// DeleteLink remove só a linha de junção; não cascateia para o catálogo nem
// para o equipamento-alvo.
func (r *EquipmentAccessoryRepository) DeleteLink(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentAccessoryTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// DeleteByEquipment remove os vínculos em que o equipamento participa como
// pai ou como alvo. Usado na exclusão do equipamento, dentro da mesma
// transação do snapshot.
func (r *EquipmentAccessoryRepository) DeleteByEquipment(ctx context.Context, tx pgx.Tx, equipmentID uint64) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE parent_equipment_id = $1 OR accessory_equipment_id = $1",
		equipmentAccessoryTable)

	var q querier = r.storage
	if tx != nil {
		q = tx
	}

	_, err := q.Exec(ctx, query, equipmentID)
	return err
}
