package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/pkg/utils"
)

type catalogFixture struct {
	service       AccessoryCatalogServiceInterface
	catalogRepo   *fakeCatalogRepo
	equipmentRepo *fakeEquipmentRepo
}

func newCatalogFixture() *catalogFixture {
	txManager := &fakeTxManager{}
	catalogRepo := newFakeCatalogRepo()
	equipmentRepo := newFakeEquipmentRepo()

	return &catalogFixture{
		service:       NewAccessoryCatalogService(txManager, catalogRepo, equipmentRepo, zap.NewNop()),
		catalogRepo:   catalogRepo,
		equipmentRepo: equipmentRepo,
	}
}

func (fx *catalogFixture) seedEntry(t *testing.T, category, name string, compat []string) {
	t.Helper()
	_, err := fx.catalogRepo.CreateEntry(context.Background(), nil, entities.AccessoryCatalog{
		Brand:              "DJI",
		Category:           category,
		Name:               name,
		ModelCompatibility: compat,
	})
	require.NoError(t, err)
}

func TestListByBrandWithoutParentReturnsEverything(t *testing.T) {
	fx := newCatalogFixture()
	fx.seedEntry(t, "Baterias", "Bateria TB60", []string{"Matrice 300"})
	fx.seedEntry(t, "Hélices", "Hélices 9453F", []string{"Mavic 3"})
	fx.seedEntry(t, "Carregadores", "Carregador 65W", nil)

	result, err := fx.service.ListByBrand(context.Background(), "DJI", nil)
	require.NoError(t, err)

	assert.Len(t, result.Entries, 3, "sem pai, nada é filtrado")
	assert.Equal(t, []string{"Baterias", "Hélices", "Carregadores"}, result.Categories,
		"categorias na ordem de primeira aparição")
}

func TestListByBrandFiltersByParentModel(t *testing.T) {
	fx := newCatalogFixture()
	fx.seedEntry(t, "Baterias", "Bateria TB60", []string{"Matrice 300"})
	fx.seedEntry(t, "Baterias", "Bateria Mavic 3", []string{"Mavic 3"})
	fx.seedEntry(t, "Carregadores", "Carregador 65W", nil)

	parentID, err := fx.equipmentRepo.CreateEquipment(context.Background(), nil, entities.Equipment{
		SequenceNumber: 1,
		Name:           "Mavic 3 Enterprise",
		EquipmentType:  "drone",
		Model:          utils.StringPtr("Mavic 3 Enterprise"),
		Status:         "active",
	})
	require.NoError(t, err)

	result, err := fx.service.ListByBrand(context.Background(), "DJI", &parentID)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Entries))
	for _, entry := range result.Entries {
		names = append(names, entry.Name)
	}
	assert.Contains(t, names, "Bateria Mavic 3", "família Mavic 3 casa com Mavic 3 Enterprise")
	assert.Contains(t, names, "Carregador 65W", "entrada sem lista serve a qualquer modelo")
	assert.NotContains(t, names, "Bateria TB60")
	assert.NotContains(t, result.Categories, "") // nunca aparece categoria vazia
}

func TestListByBrandParentWithoutModelFailsOpen(t *testing.T) {
	fx := newCatalogFixture()
	fx.seedEntry(t, "Baterias", "Bateria TB60", []string{"Matrice 300"})

	parentID, err := fx.equipmentRepo.CreateEquipment(context.Background(), nil, entities.Equipment{
		SequenceNumber: 1,
		Name:           "Drone sem modelo",
		EquipmentType:  "drone",
		Status:         "active",
	})
	require.NoError(t, err)

	result, err := fx.service.ListByBrand(context.Background(), "DJI", &parentID)
	require.NoError(t, err)
	assert.Len(t, result.Entries, 1, "equipamento sem modelo vê o catálogo inteiro")
}

func TestCreateEntryReturnsPersistedEntry(t *testing.T) {
	fx := newCatalogFixture()

	created, err := fx.service.CreateEntry(context.Background(), dto.CreateAccessoryCatalogDTO{
		Brand:              "PGYTECH",
		Category:           "Filtros",
		Name:               "Kit Filtros ND",
		ModelCompatibility: []string{"Mavic 3"},
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "PGYTECH", created.Brand)
	assert.Equal(t, []string{"Mavic 3"}, created.ModelCompatibility)
}
