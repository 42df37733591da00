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

const flightSessionTable = "flight_sessions"

const flightSessionFields = `fs.id, fs.project_name, fs.pilot_id, fs.equipment_id, fs.location,
	fs.latitude, fs.longitude, fs.flight_date, fs.duration_minutes, fs.observations,
	fs.created_at, fs.updated_at,
	p.name, e.name, e.sequence_number`

var flightSessionFieldMap = map[string]string{
	"id":           "fs.id",
	"pilot_id":     "fs.pilot_id",
	"equipment_id": "fs.equipment_id",
	"flight_date":  "fs.flight_date",
	"created_at":   "fs.created_at",
}

type FlightSessionRepositoryInterface interface {
	GetFlightSessions(ctx context.Context, filter types.Filter) ([]entities.FlightSession, uint64, error)
	FindFlightSession(ctx context.Context, id uint64) (*entities.FlightSession, error)
	CreateFlightSession(ctx context.Context, session entities.FlightSession) (uint64, error)
	UpdateFlightSession(ctx context.Context, id uint64, session entities.FlightSession) error
	DeleteFlightSession(ctx context.Context, id uint64) error
}

type FlightSessionRepository struct {
	storage *pgxpool.Pool
}

func NewFlightSessionRepository(storage *pgxpool.Pool) FlightSessionRepositoryInterface {
	return &FlightSessionRepository{storage: storage}
}

func scanFlightSession(row pgx.Row) (*entities.FlightSession, error) {
	var fs entities.FlightSession
	var equipmentID sql.NullInt64
	var location, observations sql.NullString
	var latitude, longitude sql.NullFloat64
	var duration sql.NullInt32
	var pilotName, equipmentName sql.NullString
	var equipmentSequence sql.NullInt64

	err := row.Scan(
		&fs.ID, &fs.ProjectName, &fs.PilotID, &equipmentID, &location,
		&latitude, &longitude, &fs.FlightDate, &duration, &observations,
		&fs.CreatedAt, &fs.UpdatedAt,
		&pilotName, &equipmentName, &equipmentSequence,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear flight session: %w", err)
	}

	if equipmentID.Valid {
		id := uint64(equipmentID.Int64)
		fs.EquipmentID = &id
	}
	if location.Valid {
		fs.Location = &location.String
	}
	if latitude.Valid {
		fs.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		fs.Longitude = &longitude.Float64
	}
	if duration.Valid {
		d := int(duration.Int32)
		fs.DurationMinutes = &d
	}
	if observations.Valid {
		fs.Observations = &observations.String
	}

	if pilotName.Valid {
		fs.Pilot = &entities.Pilot{ID: fs.PilotID, Name: pilotName.String}
	}
	if equipmentName.Valid && fs.EquipmentID != nil {
		fs.Equipment = &entities.Equipment{
			ID:             *fs.EquipmentID,
			Name:           equipmentName.String,
			SequenceNumber: uint64(equipmentSequence.Int64),
		}
	}

	return &fs, nil
}

func (r *FlightSessionRepository) GetFlightSessions(ctx context.Context, filter types.Filter) ([]entities.FlightSession, uint64, error) {
	builder := sq.Select(flightSessionFields).
		From(flightSessionTable + " fs").
		LeftJoin("pilots p ON p.id = fs.pilot_id").
		LeftJoin("equipments e ON e.id = fs.equipment_id").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").
		From(flightSessionTable + " fs").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"fs.project_name": search},
			sq.ILike{"fs.location": search},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	for field, raw := range filter.Filter {
		column, ok := flightSessionFieldMap[field]
		if !ok {
			continue
		}
		values := strings.Split(fmt.Sprintf("%v", raw), ",")
		cond := sq.Eq{column: values}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	builder = builder.OrderBy("fs.flight_date DESC, fs.id DESC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar a consulta de voos: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.FlightSession
	for rows.Next() {
		fs, err := scanFlightSession(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *fs)
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

func (r *FlightSessionRepository) FindFlightSession(ctx context.Context, id uint64) (*entities.FlightSession, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s fs
		LEFT JOIN pilots p ON p.id = fs.pilot_id
		LEFT JOIN equipments e ON e.id = fs.equipment_id
		WHERE fs.id = $1`, flightSessionFields, flightSessionTable)
	return scanFlightSession(r.storage.QueryRow(ctx, query, id))
}

func (r *FlightSessionRepository) CreateFlightSession(ctx context.Context, session entities.FlightSession) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (project_name, pilot_id, equipment_id, location, latitude, longitude,
			flight_date, duration_minutes, observations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`, flightSessionTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		session.ProjectName, session.PilotID, session.EquipmentID, session.Location,
		session.Latitude, session.Longitude, session.FlightDate,
		session.DurationMinutes, session.Observations,
	).Scan(&id)
	if err != nil {
		return 0, translateConstraint(err)
	}

	return id, nil
}

func (r *FlightSessionRepository) UpdateFlightSession(ctx context.Context, id uint64, session entities.FlightSession) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET project_name = $1, pilot_id = $2, equipment_id = $3, location = $4,
			latitude = $5, longitude = $6, flight_date = $7, duration_minutes = $8,
			observations = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $10`, flightSessionTable)

	result, err := r.storage.Exec(ctx, query,
		session.ProjectName, session.PilotID, session.EquipmentID, session.Location,
		session.Latitude, session.Longitude, session.FlightDate,
		session.DurationMinutes, session.Observations, id,
	)
	if err != nil {
		return translateConstraint(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *FlightSessionRepository) DeleteFlightSession(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", flightSessionTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return translateConstraint(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
