package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "fleet-system/pkg/errors"
)

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// translateConstraint converte violações de constraint do Postgres para os
// erros da aplicação: FK quebrada vira not-found (referência obsoleta da
// UI), unique/check viram conflito.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return apperrors.ErrNotFound
		case "23505", "23514": // unique_violation, check_violation
			return apperrors.ErrConflict
		}
	}
	return err
}
