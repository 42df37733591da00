package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"
)

type accessoryFixture struct {
	service       EquipmentAccessoryServiceInterface
	txManager     *fakeTxManager
	accessoryRepo *fakeAccessoryRepo
	catalogRepo   *fakeCatalogRepo
	equipmentRepo *fakeEquipmentRepo
}

func newAccessoryFixture() *accessoryFixture {
	txManager := &fakeTxManager{}
	equipmentRepo := newFakeEquipmentRepo()
	catalogRepo := newFakeCatalogRepo()
	accessoryRepo := newFakeAccessoryRepo(equipmentRepo, catalogRepo)

	return &accessoryFixture{
		service: NewEquipmentAccessoryService(
			txManager, accessoryRepo, catalogRepo, equipmentRepo, zap.NewNop()),
		txManager:     txManager,
		accessoryRepo: accessoryRepo,
		catalogRepo:   catalogRepo,
		equipmentRepo: equipmentRepo,
	}
}

func (fx *accessoryFixture) addEquipment(t *testing.T, name string, model *string) uint64 {
	t.Helper()
	id, err := fx.equipmentRepo.CreateEquipment(context.Background(), nil, entities.Equipment{
		SequenceNumber: uint64(len(fx.equipmentRepo.items) + 1),
		Name:           name,
		EquipmentType:  "drone",
		Model:          model,
		Status:         "active",
	})
	require.NoError(t, err)
	return id
}

func assertInvalidInput(t *testing.T, err error) {
	t.Helper()
	var invalidInput *apperrors.InvalidInputError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalidInput), "esperava erro de validação, veio: %v", err)
}

func TestCreateLinkRejectsMissingSelection(t *testing.T) {
	fx := newAccessoryFixture()
	parentID := fx.addEquipment(t, "Matrice 300", utils.StringPtr("Matrice 300 RTK"))

	_, err := fx.service.CreateLink(context.Background(), parentID, dto.CreateEquipmentAccessoryDTO{
		AccessoryType: "catalog",
		Quantity:      1,
	})

	assertInvalidInput(t, err)
	assert.Zero(t, fx.txManager.calls, "validação falha antes de qualquer persistência")
}

func TestCreateLinkRejectsSelfLink(t *testing.T) {
	fx := newAccessoryFixture()
	parentID := fx.addEquipment(t, "Matrice 300", nil)

	_, err := fx.service.CreateLink(context.Background(), parentID, dto.CreateEquipmentAccessoryDTO{
		AccessoryType:        "equipment",
		AccessoryEquipmentID: &parentID,
		Quantity:             1,
	})

	assertInvalidInput(t, err)
	assert.Zero(t, fx.txManager.calls)
}

func TestCreateLinkRejectsZeroQuantity(t *testing.T) {
	fx := newAccessoryFixture()
	parentID := fx.addEquipment(t, "Matrice 300", nil)
	entryID, err := fx.catalogRepo.CreateEntry(context.Background(), nil, entities.AccessoryCatalog{
		Brand: "DJI", Category: "Baterias", Name: "TB60",
	})
	require.NoError(t, err)

	_, err = fx.service.CreateLink(context.Background(), parentID, dto.CreateEquipmentAccessoryDTO{
		AccessoryType:      "catalog",
		AccessoryCatalogID: &entryID,
		Quantity:           0,
	})

	assertInvalidInput(t, err)
}

func TestCreateLinkCatalogVariant(t *testing.T) {
	fx := newAccessoryFixture()
	parentID := fx.addEquipment(t, "Matrice 300", nil)
	entryID, err := fx.catalogRepo.CreateEntry(context.Background(), nil, entities.AccessoryCatalog{
		Brand: "DJI", Category: "Baterias", Name: "Bateria TB60",
	})
	require.NoError(t, err)

	created, err := fx.service.CreateLink(context.Background(), parentID, dto.CreateEquipmentAccessoryDTO{
		AccessoryType:      "catalog",
		AccessoryCatalogID: &entryID,
		Quantity:           2,
	})
	require.NoError(t, err)

	assert.Equal(t, "catalog", created.AccessoryType)
	assert.Equal(t, 2, created.Quantity)
	require.NotNil(t, created.CatalogEntry)
	assert.Equal(t, "Bateria TB60", created.CatalogEntry.Name)
	assert.Nil(t, created.TargetEquipment)
}

func TestCreateLinkEquipmentVariantRequiresExistingTarget(t *testing.T) {
	fx := newAccessoryFixture()
	parentID := fx.addEquipment(t, "Matrice 300", nil)
	missing := uint64(777)

	_, err := fx.service.CreateLink(context.Background(), parentID, dto.CreateEquipmentAccessoryDTO{
		AccessoryType:        "equipment",
		AccessoryEquipmentID: &missing,
		Quantity:             1,
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateLinkFreeTextCreatesCatalogEntry(t *testing.T) {
	fx := newAccessoryFixture()
	parentID := fx.addEquipment(t, "Mavic 3 Pro", utils.StringPtr("Mavic 3 Pro"))

	created, err := fx.service.CreateLink(context.Background(), parentID, dto.CreateEquipmentAccessoryDTO{
		AccessoryType:  "catalog",
		CustomName:     utils.StringPtr("Hélice sobressalente genérica"),
		CustomCategory: utils.StringPtr("Hélices"),
		Quantity:       4,
	})
	require.NoError(t, err)

	require.NotNil(t, created.CatalogEntry)
	entry, err := fx.catalogRepo.FindEntry(context.Background(), created.CatalogEntry.ID)
	require.NoError(t, err)

	assert.Equal(t, "Hélice sobressalente genérica", entry.Name)
	assert.Equal(t, "Hélices", entry.Category)
	assert.Nil(t, entry.Subcategory)
	assert.Nil(t, entry.Description)
	assert.Equal(t, []string{"Mavic 3 Pro"}, entry.ModelCompatibility,
		"a compatibilidade nasce restrita ao modelo do pai")
	assert.Equal(t, 1, fx.txManager.calls, "entrada e vínculo na mesma transação")
}

func TestCreateLinkFreeTextWithoutParentModel(t *testing.T) {
	fx := newAccessoryFixture()
	parentID := fx.addEquipment(t, "Drone sem modelo", nil)

	created, err := fx.service.CreateLink(context.Background(), parentID, dto.CreateEquipmentAccessoryDTO{
		AccessoryType:  "catalog",
		CustomName:     utils.StringPtr("Cartão de memória"),
		CustomCategory: utils.StringPtr("Memória"),
		Quantity:       1,
	})
	require.NoError(t, err)

	entry, err := fx.catalogRepo.FindEntry(context.Background(), created.CatalogEntry.ID)
	require.NoError(t, err)
	assert.Nil(t, entry.ModelCompatibility, "sem modelo do pai a entrada fica aberta a todos")
}

func TestCreateLinkFreeTextRequiresCategory(t *testing.T) {
	fx := newAccessoryFixture()
	parentID := fx.addEquipment(t, "Mavic 3", utils.StringPtr("Mavic 3"))

	_, err := fx.service.CreateLink(context.Background(), parentID, dto.CreateEquipmentAccessoryDTO{
		AccessoryType: "catalog",
		CustomName:    utils.StringPtr("Hélice"),
		Quantity:      1,
	})

	assertInvalidInput(t, err)
}

func TestListAvailableTargetsExcludesParentAndLinked(t *testing.T) {
	fx := newAccessoryFixture()
	ctx := context.Background()

	parentID := fx.addEquipment(t, "Matrice 300", nil)
	cameraID := fx.addEquipment(t, "Zenmuse H20T", nil)
	batteryID := fx.addEquipment(t, "Bateria TB60", nil)

	_, err := fx.service.CreateLink(ctx, parentID, dto.CreateEquipmentAccessoryDTO{
		AccessoryType:        "equipment",
		AccessoryEquipmentID: &cameraID,
		Quantity:             1,
	})
	require.NoError(t, err)

	targets, err := fx.service.ListAvailableTargets(ctx, parentID)
	require.NoError(t, err)

	ids := make([]uint64, 0, len(targets))
	for _, target := range targets {
		ids = append(ids, target.ID)
	}
	assert.NotContains(t, ids, parentID, "o pai nunca aparece como candidato")
	assert.NotContains(t, ids, cameraID, "já vinculado não volta à lista")
	assert.Contains(t, ids, batteryID)
}

func TestListAvailableTargetsScopedToParent(t *testing.T) {
	fx := newAccessoryFixture()
	ctx := context.Background()

	parentA := fx.addEquipment(t, "Matrice 300", nil)
	parentB := fx.addEquipment(t, "Matrice 350", nil)
	cameraID := fx.addEquipment(t, "Zenmuse H20T", nil)

	_, err := fx.service.CreateLink(ctx, parentB, dto.CreateEquipmentAccessoryDTO{
		AccessoryType:        "equipment",
		AccessoryEquipmentID: &cameraID,
		Quantity:             1,
	})
	require.NoError(t, err)

	targets, err := fx.service.ListAvailableTargets(ctx, parentA)
	require.NoError(t, err)

	ids := make([]uint64, 0, len(targets))
	for _, target := range targets {
		ids = append(ids, target.ID)
	}
	assert.Contains(t, ids, cameraID, "vínculo com outro pai não esconde o equipamento")
	assert.Contains(t, ids, parentB)
	assert.NotContains(t, ids, parentA)

	targets, err = fx.service.ListAvailableTargets(ctx, parentB)
	require.NoError(t, err)
	for _, target := range targets {
		assert.NotEqual(t, cameraID, target.ID, "já vinculado a este pai não volta à lista")
	}
}

func TestDeleteLinkDoesNotTouchCatalog(t *testing.T) {
	fx := newAccessoryFixture()
	ctx := context.Background()

	parentID := fx.addEquipment(t, "Matrice 300", nil)
	entryID, err := fx.catalogRepo.CreateEntry(ctx, nil, entities.AccessoryCatalog{
		Brand: "DJI", Category: "Baterias", Name: "TB60",
	})
	require.NoError(t, err)

	created, err := fx.service.CreateLink(ctx, parentID, dto.CreateEquipmentAccessoryDTO{
		AccessoryType:      "catalog",
		AccessoryCatalogID: &entryID,
		Quantity:           1,
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteLink(ctx, created.ID))

	links, err := fx.service.ListByParent(ctx, parentID)
	require.NoError(t, err)
	assert.Empty(t, links)

	_, err = fx.catalogRepo.FindEntry(ctx, entryID)
	assert.NoError(t, err, "a entrada do catálogo sobrevive à remoção do vínculo")
}
