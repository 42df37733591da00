package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleet-system/internal/entities"
	"fleet-system/pkg/types"
)

const equipmentHistoryTable = "equipment_history"

const equipmentHistoryFields = `h.id, h.original_equipment_id, h.sequence_number, h.name, h.equipment_type,
	h.serial_number, h.sisant_registration, h.manufacturer, h.model, h.status, h.acquisition_date,
	h.value, h.location, h.responsible_user, h.observations, h.deleted_at, h.deleted_by`

var equipmentHistoryFieldMap = map[string]string{
	"sequence_number": "h.sequence_number",
	"name":            "h.name",
	"equipment_type":  "h.equipment_type",
	"deleted_at":      "h.deleted_at",
}

type EquipmentHistoryRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, record entities.EquipmentHistory) error
	GetHistory(ctx context.Context, filter types.Filter) ([]entities.EquipmentHistory, uint64, error)
	CountByOriginalEquipment(ctx context.Context, originalEquipmentID uint64) (uint64, error)
}

type EquipmentHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentHistoryRepository(storage *pgxpool.Pool) EquipmentHistoryRepositoryInterface {
	return &EquipmentHistoryRepository{storage: storage}
}

// CreateInTx grava o snapshot na mesma transação que remove o equipamento.
// O registro nunca é alterado nem removido depois.
func (r *EquipmentHistoryRepository) CreateInTx(ctx context.Context, tx pgx.Tx, record entities.EquipmentHistory) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (original_equipment_id, sequence_number, name, equipment_type, serial_number,
			sisant_registration, manufacturer, model, status, acquisition_date, value, location,
			responsible_user, observations, deleted_at, deleted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		equipmentHistoryTable)

	_, err := tx.Exec(ctx, query,
		record.OriginalEquipmentID,
		record.SequenceNumber,
		record.Name,
		record.EquipmentType,
		record.SerialNumber,
		record.SisantRegistration,
		record.Manufacturer,
		record.Model,
		record.Status,
		record.AcquisitionDate,
		record.Value,
		record.Location,
		record.ResponsibleUser,
		record.Observations,
		record.DeletedAt,
		record.DeletedBy,
	)
	return err
}

func (r *EquipmentHistoryRepository) GetHistory(ctx context.Context, filter types.Filter) ([]entities.EquipmentHistory, uint64, error) {
	builder := sq.Select(equipmentHistoryFields).
		From(equipmentHistoryTable + " h").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").
		From(equipmentHistoryTable + " h").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"h.name": search},
			sq.ILike{"h.serial_number": search},
			sq.ILike{"h.model": search},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	for field, raw := range filter.Filter {
		column, ok := equipmentHistoryFieldMap[field]
		if !ok {
			continue
		}
		values := strings.Split(fmt.Sprintf("%v", raw), ",")
		cond := sq.Eq{column: values}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	builder = builder.OrderBy("h.deleted_at DESC", "h.id DESC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar a consulta do histórico: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []entities.EquipmentHistory
	for rows.Next() {
		var h entities.EquipmentHistory
		var serial, sisant, manufacturer, model, status, location, responsible, observations, deletedBy sql.NullString
		var acquisitionDate sql.NullTime
		var value sql.NullFloat64

		err := rows.Scan(
			&h.ID, &h.OriginalEquipmentID, &h.SequenceNumber, &h.Name, &h.EquipmentType,
			&serial, &sisant, &manufacturer, &model, &status, &acquisitionDate,
			&value, &location, &responsible, &observations, &h.DeletedAt, &deletedBy,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear equipment_history: %w", err)
		}

		if serial.Valid {
			h.SerialNumber = &serial.String
		}
		if sisant.Valid {
			h.SisantRegistration = &sisant.String
		}
		if manufacturer.Valid {
			h.Manufacturer = &manufacturer.String
		}
		if model.Valid {
			h.Model = &model.String
		}
		if status.Valid {
			h.Status = &status.String
		}
		if acquisitionDate.Valid {
			h.AcquisitionDate = &acquisitionDate.Time
		}
		if value.Valid {
			h.Value = &value.Float64
		}
		if location.Valid {
			h.Location = &location.String
		}
		if responsible.Valid {
			h.ResponsibleUser = &responsible.String
		}
		if observations.Valid {
			h.Observations = &observations.String
		}
		if deletedBy.Valid {
			h.DeletedBy = &deletedBy.String
		}

		records = append(records, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar a contagem do histórico: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *EquipmentHistoryRepository) CountByOriginalEquipment(ctx context.Context, originalEquipmentID uint64) (uint64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE original_equipment_id = $1", equipmentHistoryTable)

	var total uint64
	if err := r.storage.QueryRow(ctx, query, originalEquipmentID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
