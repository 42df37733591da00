package main

import (
	"flag"
	"log"

	"fleet-system/pkg/config"
	"fleet-system/pkg/database/postgresql"
	"fleet-system/seeders"
)

func main() {
	runCatalog := flag.Bool("catalog", false, "Popular o catálogo inicial de acessórios")
	runAdmin := flag.Bool("admin", false, "Criar o usuário administrador inicial")
	runAll := flag.Bool("all", false, "Executar todos os seeders")

	flag.Parse()

	if !*runCatalog && !*runAdmin && !*runAll {
		log.Println("Nenhum seeder selecionado.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Exemplos:")
		log.Println("  go run ./seeders/cmd/seed -catalog")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	log.Println("DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runCatalog {
		seeders.SeedCatalog(dbPool)
	}
	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool)
	}

	log.Println("Seeders concluídos.")
}
