package postgresql

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"fleet-system/migrations"
)

// RunMigrations aplica as migrações embutidas antes do servidor subir.
func RunMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("não foi possível abrir a conexão para migração: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("dialeto de migração inválido: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("falha ao aplicar migrações: %w", err)
	}

	return nil
}
