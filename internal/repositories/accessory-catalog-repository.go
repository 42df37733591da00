package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
)

const accessoryCatalogTable = "accessory_catalog"

const accessoryCatalogFields = "ac.id, ac.brand, ac.category, ac.subcategory, ac.name, ac.description, ac.model_compatibility, ac.created_at, ac.updated_at"

type AccessoryCatalogRepositoryInterface interface {
	GetByBrand(ctx context.Context, brand string) ([]entities.AccessoryCatalog, error)
	FindEntry(ctx context.Context, id uint64) (*entities.AccessoryCatalog, error)
	CreateEntry(ctx context.Context, tx pgx.Tx, entry entities.AccessoryCatalog) (uint64, error)
}

type AccessoryCatalogRepository struct {
	storage *pgxpool.Pool
}

func NewAccessoryCatalogRepository(storage *pgxpool.Pool) AccessoryCatalogRepositoryInterface {
	return &AccessoryCatalogRepository{storage: storage}
}

func scanAccessoryCatalog(row pgx.Row) (*entities.AccessoryCatalog, error) {
	var entry entities.AccessoryCatalog
	var subcategory, description sql.NullString

	err := row.Scan(
		&entry.ID, &entry.Brand, &entry.Category, &subcategory, &entry.Name,
		&description, &entry.ModelCompatibility, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear accessory_catalog: %w", err)
	}

	if subcategory.Valid {
		entry.Subcategory = &subcategory.String
	}
	if description.Valid {
		entry.Description = &description.String
	}

	return &entry, nil
}

// GetByBrand devolve o catálogo de uma marca ordenado por categoria e nome,
// a ordem que define as categorias por primeira aparição.
func (r *AccessoryCatalogRepository) GetByBrand(ctx context.Context, brand string) ([]entities.AccessoryCatalog, error) {
	query, args, err := sq.Select(accessoryCatalogFields).
		From(accessoryCatalogTable + " ac").
		Where(sq.Eq{"ac.brand": brand}).
		OrderBy("ac.category ASC", "ac.name ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar a consulta do catálogo: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entities.AccessoryCatalog
	for rows.Next() {
		entry, err := scanAccessoryCatalog(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (r *AccessoryCatalogRepository) FindEntry(ctx context.Context, id uint64) (*entities.AccessoryCatalog, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ac WHERE ac.id = $1", accessoryCatalogFields, accessoryCatalogTable)
	return scanAccessoryCatalog(r.storage.QueryRow(ctx, query, id))
}

func (r *AccessoryCatalogRepository) CreateEntry(ctx context.Context, tx pgx.Tx, entry entities.AccessoryCatalog) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (brand, category, subcategory, name, description, model_compatibility)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, accessoryCatalogTable)

	var q querier = r.storage
	if tx != nil {
		q = tx
	}

	var id uint64
	err := q.QueryRow(ctx, query,
		entry.Brand,
		entry.Category,
		entry.Subcategory,
		entry.Name,
		entry.Description,
		entry.ModelCompatibility,
	).Scan(&id)
	if err != nil {
		return 0, translateConstraint(err)
	}

	return id, nil
}
