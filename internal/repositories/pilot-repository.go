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

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"
)

const pilotTable = "pilots"

const pilotFields = "p.id, p.name, p.license_number, p.phone, p.email, p.status, p.created_at, p.updated_at"

var pilotFieldMap = map[string]string{
	"id":         "p.id",
	"name":       "p.name",
	"status":     "p.status",
	"created_at": "p.created_at",
}

type PilotRepositoryInterface interface {
	GetPilots(ctx context.Context, filter types.Filter) ([]entities.Pilot, uint64, error)
	FindPilot(ctx context.Context, id uint64) (*entities.Pilot, error)
	CreatePilot(ctx context.Context, pilot entities.Pilot) (uint64, error)
	UpdatePilot(ctx context.Context, id uint64, pilot entities.Pilot) error
	DeletePilot(ctx context.Context, id uint64) error
}

type PilotRepository struct {
	storage *pgxpool.Pool
}

func NewPilotRepository(storage *pgxpool.Pool) PilotRepositoryInterface {
	return &PilotRepository{storage: storage}
}

func scanPilot(row pgx.Row) (*entities.Pilot, error) {
	var p entities.Pilot
	var license, phone, email sql.NullString

	err := row.Scan(&p.ID, &p.Name, &license, &phone, &email, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear pilot: %w", err)
	}

	if license.Valid {
		p.LicenseNumber = &license.String
	}
	if phone.Valid {
		p.Phone = &phone.String
	}
	if email.Valid {
		p.Email = &email.String
	}

	return &p, nil
}

func (r *PilotRepository) GetPilots(ctx context.Context, filter types.Filter) ([]entities.Pilot, uint64, error) {
	builder := sq.Select(pilotFields).
		From(pilotTable + " p").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").
		From(pilotTable + " p").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"p.name": search},
			sq.ILike{"p.license_number": search},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	for field, raw := range filter.Filter {
		column, ok := pilotFieldMap[field]
		if !ok {
			continue
		}
		values := strings.Split(fmt.Sprintf("%v", raw), ",")
		cond := sq.Eq{column: values}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	builder = builder.OrderBy("p.name ASC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar a consulta de pilotos: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Pilot
	for rows.Next() {
		p, err := scanPilot(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *PilotRepository) FindPilot(ctx context.Context, id uint64) (*entities.Pilot, error) {
	query := fmt.Sprintf("SELECT %s FROM %s p WHERE p.id = $1", pilotFields, pilotTable)
	return scanPilot(r.storage.QueryRow(ctx, query, id))
}

func (r *PilotRepository) CreatePilot(ctx context.Context, pilot entities.Pilot) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, license_number, phone, email, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, pilotTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		pilot.Name, pilot.LicenseNumber, pilot.Phone, pilot.Email, pilot.Status,
	).Scan(&id)
	if err != nil {
		return 0, translateConstraint(err)
	}

	return id, nil
}

func (r *PilotRepository) UpdatePilot(ctx context.Context, id uint64, pilot entities.Pilot) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, license_number = $2, phone = $3, email = $4, status = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6`, pilotTable)

	result, err := r.storage.Exec(ctx, query,
		pilot.Name, pilot.LicenseNumber, pilot.Phone, pilot.Email, pilot.Status, id,
	)
	if err != nil {
		return translateConstraint(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PilotRepository) DeletePilot(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pilotTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return translateConstraint(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
