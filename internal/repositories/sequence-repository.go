package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "fleet-system/pkg/errors"
)

type SequenceRepositoryInterface interface {
	NextSequenceNumber(ctx context.Context, tx pgx.Tx) (uint64, error)
}

type SequenceRepository struct {
	storage *pgxpool.Pool
}

func NewSequenceRepository(storage *pgxpool.Pool) SequenceRepositoryInterface {
	return &SequenceRepository{storage: storage}
}

// NextSequenceNumber aloca o próximo número de exibição. O incremento
// acontece inteiro no banco; dois criadores concorrentes nunca recebem o
// mesmo número.
func (r *SequenceRepository) NextSequenceNumber(ctx context.Context, tx pgx.Tx) (uint64, error) {
	const query = `
		UPDATE equipment_sequence
		SET last_sequence_number = last_sequence_number + 1, updated_at = now()
		WHERE id = 1
		RETURNING last_sequence_number`

	var q querier = r.storage
	if tx != nil {
		q = tx
	}

	var next uint64
	if err := q.QueryRow(ctx, query).Scan(&next); err != nil {
		if err == pgx.ErrNoRows {
			return 0, apperrors.ErrNotFound
		}
		return 0, err
	}

	return next, nil
}
