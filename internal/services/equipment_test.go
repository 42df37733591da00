package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/pkg/contextkeys"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"
	"fleet-system/pkg/utils"
)

type equipmentFixture struct {
	service       EquipmentServiceInterface
	txManager     *fakeTxManager
	equipmentRepo *fakeEquipmentRepo
	sequenceRepo  *fakeSequenceRepo
	historyRepo   *fakeHistoryRepo
	accessoryRepo *fakeAccessoryRepo
	userRepo      *fakeUserRepo
}

func newEquipmentFixture() *equipmentFixture {
	txManager := &fakeTxManager{}
	equipmentRepo := newFakeEquipmentRepo()
	sequenceRepo := &fakeSequenceRepo{}
	historyRepo := &fakeHistoryRepo{}
	catalogRepo := newFakeCatalogRepo()
	accessoryRepo := newFakeAccessoryRepo(equipmentRepo, catalogRepo)
	userRepo := newFakeUserRepo()

	return &equipmentFixture{
		service: NewEquipmentService(
			txManager, equipmentRepo, sequenceRepo, historyRepo, accessoryRepo, userRepo, zap.NewNop()),
		txManager:     txManager,
		equipmentRepo: equipmentRepo,
		sequenceRepo:  sequenceRepo,
		historyRepo:   historyRepo,
		accessoryRepo: accessoryRepo,
		userRepo:      userRepo,
	}
}

func TestCreateEquipmentAllocatesSequence(t *testing.T) {
	fx := newEquipmentFixture()
	ctx := context.Background()

	first, err := fx.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name:          "Mavic 3 Enterprise",
		EquipmentType: "drone",
		Model:         utils.StringPtr("Mavic 3 Enterprise"),
	})
	require.NoError(t, err)

	second, err := fx.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name:          "Bateria TB60",
		EquipmentType: "battery",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.SequenceNumber)
	assert.Equal(t, uint64(2), second.SequenceNumber)
	assert.Equal(t, "#0001", first.SequenceDisplay)
	assert.Equal(t, "#0002", second.SequenceDisplay)
	assert.Equal(t, "active", first.Status, "status padrão deve ser active")
}

func TestCreateEquipmentConcurrentSequencesAreUnique(t *testing.T) {
	fx := newEquipmentFixture()
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan uint64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := fx.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
				Name:          "Drone",
				EquipmentType: "drone",
			})
			if err == nil {
				results <- created.SequenceNumber
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[uint64]bool)
	count := 0
	for seq := range results {
		assert.False(t, seen[seq], "número sequencial repetido: %d", seq)
		seen[seq] = true
		count++
	}
	assert.Equal(t, workers, count)
}

func TestCreateEquipmentRejectsBadDate(t *testing.T) {
	fx := newEquipmentFixture()

	_, err := fx.service.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:            "Drone",
		EquipmentType:   "drone",
		AcquisitionDate: utils.StringPtr("31/12/2024"),
	})

	var invalidInput *apperrors.InvalidInputError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalidInput))
}

func TestDeleteEquipmentWritesHistorySnapshot(t *testing.T) {
	fx := newEquipmentFixture()
	ctx := context.Background()

	created, err := fx.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name:               "Matrice 300 RTK",
		EquipmentType:      "drone",
		SerialNumber:       utils.StringPtr("1ZNBH8K0012345"),
		SisantRegistration: utils.StringPtr("PR-123456789"),
		Manufacturer:       utils.StringPtr("DJI"),
		Model:              utils.StringPtr("Matrice 300 RTK"),
		Value:              null.Float64From(185000),
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteEquipment(ctx, created.ID))

	_, err = fx.service.FindEquipment(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	records, total, err := fx.historyRepo.GetHistory(ctx, types.Filter{})
	require.NoError(t, err)
	require.Equal(t, uint64(1), total)

	snapshot := records[0]
	assert.Equal(t, created.ID, snapshot.OriginalEquipmentID)
	assert.Equal(t, created.SequenceNumber, snapshot.SequenceNumber)
	assert.Equal(t, "Matrice 300 RTK", snapshot.Name)
	assert.Equal(t, "drone", snapshot.EquipmentType)
	require.NotNil(t, snapshot.SerialNumber)
	assert.Equal(t, "1ZNBH8K0012345", *snapshot.SerialNumber)
	require.NotNil(t, snapshot.SisantRegistration)
	assert.Equal(t, "PR-123456789", *snapshot.SisantRegistration)
	require.NotNil(t, snapshot.Value)
	assert.Equal(t, 185000.0, *snapshot.Value)
	assert.False(t, snapshot.DeletedAt.IsZero())
}

func TestDeleteEquipmentRecordsDeletedBy(t *testing.T) {
	fx := newEquipmentFixture()

	userID, err := fx.userRepo.CreateUser(context.Background(), entities.User{
		Name: "Maria Operadora", Email: "maria@fleet.local", Role: "operator",
	})
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, userID)

	created, err := fx.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name: "Drone", EquipmentType: "drone",
	})
	require.NoError(t, err)
	require.NoError(t, fx.service.DeleteEquipment(ctx, created.ID))

	records, _, err := fx.historyRepo.GetHistory(ctx, types.Filter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].DeletedBy)
	assert.Equal(t, "Maria Operadora", *records[0].DeletedBy)
}

func TestDeleteEquipmentCascadesLinks(t *testing.T) {
	fx := newEquipmentFixture()
	ctx := context.Background()

	parent, err := fx.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name: "Matrice 300", EquipmentType: "drone",
	})
	require.NoError(t, err)

	target, err := fx.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name: "Zenmuse H20T", EquipmentType: "camera",
	})
	require.NoError(t, err)

	// target como acessório do parent, e parent como acessório de target:
	// a exclusão tem de varrer os dois lados da junção.
	_, err = fx.accessoryRepo.CreateLink(ctx, nil, entities.EquipmentAccessory{
		ParentEquipmentID: parent.ID, AccessoryType: "equipment",
		AccessoryEquipmentID: &target.ID, Quantity: 1,
	})
	require.NoError(t, err)
	_, err = fx.accessoryRepo.CreateLink(ctx, nil, entities.EquipmentAccessory{
		ParentEquipmentID: target.ID, AccessoryType: "equipment",
		AccessoryEquipmentID: &parent.ID, Quantity: 1,
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteEquipment(ctx, parent.ID))

	remaining, err := fx.accessoryRepo.ListByParent(ctx, target.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining, "vínculos com o equipamento excluído devem sumir dos dois lados")
}

func TestDeleteEquipmentWritesExactlyOneSnapshot(t *testing.T) {
	fx := newEquipmentFixture()
	ctx := context.Background()

	first, err := fx.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name: "Mavic 3", EquipmentType: "drone",
	})
	require.NoError(t, err)
	second, err := fx.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name: "Mini 3 Pro", EquipmentType: "drone",
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteEquipment(ctx, first.ID))
	require.NoError(t, fx.service.DeleteEquipment(ctx, second.ID))

	count, err := fx.historyRepo.CountByOriginalEquipment(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count, "cada exclusão gera exatamente um registro de histórico")

	count, err = fx.historyRepo.CountByOriginalEquipment(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestDeleteMissingEquipmentWritesNothing(t *testing.T) {
	fx := newEquipmentFixture()
	ctx := context.Background()

	err := fx.service.DeleteEquipment(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, total, err := fx.historyRepo.GetHistory(ctx, types.Filter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, fx.txManager.calls, "nenhuma transação deve abrir para um id inexistente")
}

func TestUpdateEquipmentMergesFields(t *testing.T) {
	fx := newEquipmentFixture()
	ctx := context.Background()

	created, err := fx.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name:          "Mini 3 Pro",
		EquipmentType: "drone",
		Location:      utils.StringPtr("Base Curitiba"),
	})
	require.NoError(t, err)

	updated, err := fx.service.UpdateEquipment(ctx, created.ID, dto.UpdateEquipmentDTO{
		Status: utils.StringPtr("maintenance"),
	})
	require.NoError(t, err)

	assert.Equal(t, "maintenance", updated.Status)
	assert.Equal(t, "Mini 3 Pro", updated.Name, "campos não enviados permanecem")
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Base Curitiba", *updated.Location)
	assert.Equal(t, created.SequenceNumber, updated.SequenceNumber, "o número sequencial nunca muda")
}
