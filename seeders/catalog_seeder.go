package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type catalogSeed struct {
	Brand              string
	Category           string
	Subcategory        string
	Name               string
	ModelCompatibility []string
}

// Entradas iniciais do catálogo de acessórios. A lista de compatibilidade
// usa os tokens de família que o resolvedor expande; entradas sem lista
// servem a qualquer modelo.
var catalogData = []catalogSeed{
	// DJI - baterias
	{"DJI", "Baterias", "Inteligentes", "Bateria Inteligente TB60", []string{"Matrice 300", "M300"}},
	{"DJI", "Baterias", "Inteligentes", "Bateria Inteligente TB65", []string{"Matrice 350", "M350"}},
	{"DJI", "Baterias", "Inteligentes", "Bateria de Voo Mavic 3", []string{"Mavic 3"}},
	{"DJI", "Baterias", "Inteligentes", "Bateria de Voo Air 2S", []string{"Air 2S", "Mavic Air 2"}},
	{"DJI", "Baterias", "Inteligentes", "Bateria de Voo Mini 3", []string{"Mini 3", "Mini 3 Pro"}},
	{"DJI", "Baterias", "Inteligentes", "Bateria Phantom 4", []string{"Phantom 4"}},
	// DJI - hélices
	{"DJI", "Hélices", "", "Hélices 2110 (par)", []string{"Matrice 300", "Matrice 350"}},
	{"DJI", "Hélices", "", "Hélices 9453F (par)", []string{"Mavic 3"}},
	{"DJI", "Hélices", "", "Hélices 7238F (par)", []string{"Air 2S", "Mavic Air 2"}},
	{"DJI", "Hélices", "", "Hélices 6030F (par)", []string{"Mini 3", "Mini 4"}},
	// DJI - carregadores e estojos
	{"DJI", "Carregadores", "", "Hub de Carregamento BS60", []string{"Matrice 300", "M300"}},
	{"DJI", "Carregadores", "", "Hub de Carregamento Mavic 3", []string{"Mavic 3"}},
	{"DJI", "Carregadores", "", "Carregador 65W Portátil", nil},
	{"DJI", "Estojos", "", "Case Rígido Matrice", []string{"Matrice 300", "Matrice 350"}},
	{"DJI", "Estojos", "", "Bolsa de Transporte Mavic", []string{"Mavic 3", "Mavic 2"}},
	// DJI - câmeras e payloads
	{"DJI", "Câmeras", "Payloads", "Zenmuse H20T", []string{"Matrice 300", "Matrice 350"}},
	{"DJI", "Câmeras", "Payloads", "Zenmuse P1", []string{"Matrice 300", "Matrice 350"}},
	{"DJI", "Câmeras", "Payloads", "Zenmuse L2", []string{"Matrice 350"}},
	// Autel
	{"Autel Robotics", "Baterias", "", "Bateria EVO II", []string{"EVO II"}},
	{"Autel Robotics", "Baterias", "", "Bateria EVO Max", []string{"EVO Max"}},
	{"Autel Robotics", "Hélices", "", "Hélices EVO II (par)", []string{"EVO II"}},
	{"Autel Robotics", "Carregadores", "", "Carregador Multi-bateria EVO", []string{"EVO"}},
	// Dahua
	{"Dahua", "Baterias", "", "Bateria X820", []string{"X820", "X1200"}},
	{"Dahua", "Hélices", "", "Hélices X820 (par)", []string{"X820"}},
	// genéricos
	{"SanDisk", "Memória", "Cartões", "Cartão microSD Extreme Pro 128GB", nil},
	{"SanDisk", "Memória", "Cartões", "Cartão microSD Extreme Pro 256GB", nil},
	{"PGYTECH", "Filtros", "ND", "Kit Filtros ND 8/16/32", []string{"Mavic 3"}},
	{"PGYTECH", "Pouso", "", "Plataforma de Pouso Dobrável 110cm", nil},
}

func seedAccessoryCatalog(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Populando a tabela 'accessory_catalog'...")

	query := `
		INSERT INTO accessory_catalog (brand, category, subcategory, name, model_compatibility)
		SELECT $1, $2, NULLIF($3, ''), $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM accessory_catalog WHERE brand = $1 AND name = $4
		)`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, entry := range catalogData {
		if _, err := tx.Exec(ctx, query,
			entry.Brand, entry.Category, entry.Subcategory, entry.Name, entry.ModelCompatibility,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// SeedCatalog garante as entradas iniciais do catálogo de acessórios.
func SeedCatalog(db *pgxpool.Pool) {
	ctx := context.Background()
	if err := seedAccessoryCatalog(ctx, db); err != nil {
		log.Fatalf("erro ao popular o catálogo de acessórios: %v", err)
	}
	log.Println("    - Catálogo de acessórios verificado/criado.")
}
