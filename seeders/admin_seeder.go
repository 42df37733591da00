package seeders

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"fleet-system/pkg/constants"
	"fleet-system/pkg/utils"
)

// SeedAdmin cria o usuário administrador inicial se ele ainda não existir.
// Email e senha vêm de ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@fleet.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("  - AVISO: ADMIN_PASSWORD não definido, usando a senha padrão de desenvolvimento.")
	}

	var exists bool
	if err := db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", email,
	).Scan(&exists); err != nil {
		log.Fatalf("erro ao verificar o administrador: %v", err)
	}
	if exists {
		log.Println("  - Administrador já existe, nada a fazer.")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("erro ao gerar o hash da senha: %v", err)
	}

	if _, err := db.Exec(ctx,
		"INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4)",
		"Administrador", email, hash, constants.RoleAdmin,
	); err != nil {
		log.Fatalf("erro ao criar o administrador: %v", err)
	}

	log.Printf("  - Administrador criado: %s", email)
}
