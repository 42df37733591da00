package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"
)

const equipmentTable = "equipments"

const equipmentFields = `e.id, e.sequence_number, e.name, e.equipment_type, e.serial_number,
	e.sisant_registration, e.manufacturer, e.model, e.status, e.acquisition_date,
	e.value, e.location, e.responsible_user, e.observations, e.created_at, e.updated_at`

// Mapa único de campos aceitos em filtro e ordenação.
var equipmentFieldMap = map[string]string{
	"id":              "e.id",
	"sequence_number": "e.sequence_number",
	"name":            "e.name",
	"equipment_type":  "e.equipment_type",
	"status":          "e.status",
	"manufacturer":    "e.manufacturer",
	"model":           "e.model",
	"created_at":      "e.created_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, tx pgx.Tx, equipment entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error
	DeleteEquipment(ctx context.Context, tx pgx.Tx, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var serialNumber, sisant, manufacturer, model, location, responsible, observations sql.NullString
	var acquisitionDate sql.NullTime
	var value sql.NullFloat64

	err := row.Scan(
		&e.ID, &e.SequenceNumber, &e.Name, &e.EquipmentType, &serialNumber,
		&sisant, &manufacturer, &model, &e.Status, &acquisitionDate,
		&value, &location, &responsible, &observations, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear equipment: %w", err)
	}

	if serialNumber.Valid {
		e.SerialNumber = &serialNumber.String
	}
	if sisant.Valid {
		e.SisantRegistration = &sisant.String
	}
	if manufacturer.Valid {
		e.Manufacturer = &manufacturer.String
	}
	if model.Valid {
		e.Model = &model.String
	}
	if acquisitionDate.Valid {
		e.AcquisitionDate = &acquisitionDate.Time
	}
	if value.Valid {
		e.Value = &value.Float64
	}
	if location.Valid {
		e.Location = &location.String
	}
	if responsible.Valid {
		e.ResponsibleUser = &responsible.String
	}
	if observations.Valid {
		e.Observations = &observations.String
	}

	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	builder := sq.Select(equipmentFields).
		From(equipmentTable + " e").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").
		From(equipmentTable + " e").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"e.name": search},
			sq.ILike{"e.serial_number": search},
			sq.ILike{"e.model": search},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	for field, raw := range filter.Filter {
		column, ok := equipmentFieldMap[field]
		if !ok {
			continue
		}
		values := strings.Split(fmt.Sprintf("%v", raw), ",")
		cond := sq.Eq{column: values}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	orderApplied := false
	for field, direction := range filter.Sort {
		if column, ok := equipmentFieldMap[field]; ok {
			builder = builder.OrderBy(column + " " + strings.ToUpper(direction))
			orderApplied = true
		}
	}
	if !orderApplied {
		builder = builder.OrderBy("e.sequence_number ASC")
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar a consulta de equipamentos: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar a contagem de equipamentos: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s e WHERE e.id = $1", equipmentFields, equipmentTable)
	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, tx pgx.Tx, equipment entities.Equipment) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (sequence_number, name, equipment_type, serial_number, sisant_registration,
			manufacturer, model, status, acquisition_date, value, location, responsible_user, observations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`, equipmentTable)

	var q querier = r.storage
	if tx != nil {
		q = tx
	}

	var id uint64
	err := q.QueryRow(ctx, query,
		equipment.SequenceNumber,
		equipment.Name,
		equipment.EquipmentType,
		equipment.SerialNumber,
		equipment.SisantRegistration,
		equipment.Manufacturer,
		equipment.Model,
		equipment.Status,
		equipment.AcquisitionDate,
		equipment.Value,
		equipment.Location,
		equipment.ResponsibleUser,
		equipment.Observations,
	).Scan(&id)
	if err != nil {
		return 0, translateConstraint(err)
	}

	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, equipment_type = $2, serial_number = $3, sisant_registration = $4,
			manufacturer = $5, model = $6, status = $7, acquisition_date = $8, value = $9,
			location = $10, responsible_user = $11, observations = $12, updated_at = CURRENT_TIMESTAMP
		WHERE id = $13`, equipmentTable)

	result, err := r.storage.Exec(ctx, query,
		equipment.Name,
		equipment.EquipmentType,
		equipment.SerialNumber,
		equipment.SisantRegistration,
		equipment.Manufacturer,
		equipment.Model,
		equipment.Status,
		equipment.AcquisitionDate,
		equipment.Value,
		equipment.Location,
		equipment.ResponsibleUser,
		equipment.Observations,
		id,
	)
	if err != nil {
		return translateConstraint(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, tx pgx.Tx, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable)

	var q querier = r.storage
	if tx != nil {
		q = tx
	}

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return translateConstraint(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
