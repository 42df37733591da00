package services

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"
)

// Dublês em memória dos repositórios, para exercitar as regras de negócio
// sem banco. O fakeTxManager apenas executa a função; os erros abortam a
// "transação" exatamente como no gerenciador real.

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	m.calls++
	return fn(nil)
}

type fakeSequenceRepo struct {
	mu   sync.Mutex
	last uint64
}

func (r *fakeSequenceRepo) NextSequenceNumber(ctx context.Context, tx pgx.Tx) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last++
	return r.last, nil
}

type fakeEquipmentRepo struct {
	mu     sync.Mutex
	nextID uint64
	items  map[uint64]entities.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: make(map[uint64]entities.Equipment)}
}

func (r *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]entities.Equipment, 0, len(r.items))
	for _, e := range r.items {
		list = append(list, e)
	}
	return list, uint64(len(list)), nil
}

func (r *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEquipmentRepo) CreateEquipment(ctx context.Context, tx pgx.Tx, equipment entities.Equipment) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.SequenceNumber == equipment.SequenceNumber {
			return 0, apperrors.ErrConflict
		}
	}
	r.nextID++
	equipment.ID = r.nextID
	r.items[equipment.ID] = equipment
	return equipment.ID, nil
}

func (r *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	equipment.ID = id
	r.items[id] = equipment
	return nil
}

func (r *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, tx pgx.Tx, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	records []entities.EquipmentHistory
}

func (r *fakeHistoryRepo) CreateInTx(ctx context.Context, tx pgx.Tx, record entities.EquipmentHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = uint64(len(r.records) + 1)
	r.records = append(r.records, record)
	return nil
}

func (r *fakeHistoryRepo) GetHistory(ctx context.Context, filter types.Filter) ([]entities.EquipmentHistory, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.EquipmentHistory, len(r.records))
	copy(out, r.records)
	return out, uint64(len(out)), nil
}

func (r *fakeHistoryRepo) CountByOriginalEquipment(ctx context.Context, originalEquipmentID uint64) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count uint64
	for _, record := range r.records {
		if record.OriginalEquipmentID == originalEquipmentID {
			count++
		}
	}
	return count, nil
}

type fakeAccessoryRepo struct {
	mu     sync.Mutex
	nextID uint64
	links  map[uint64]entities.EquipmentAccessory

	equipmentRepo *fakeEquipmentRepo
	catalogRepo   *fakeCatalogRepo
}

func newFakeAccessoryRepo(equipmentRepo *fakeEquipmentRepo, catalogRepo *fakeCatalogRepo) *fakeAccessoryRepo {
	return &fakeAccessoryRepo{
		links:         make(map[uint64]entities.EquipmentAccessory),
		equipmentRepo: equipmentRepo,
		catalogRepo:   catalogRepo,
	}
}

func (r *fakeAccessoryRepo) ListByParent(ctx context.Context, parentID uint64) ([]entities.EquipmentAccessory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.EquipmentAccessory
	for _, link := range r.links {
		if link.ParentEquipmentID != parentID {
			continue
		}
		if link.AccessoryCatalogID != nil && r.catalogRepo != nil {
			if entry, ok := r.catalogRepo.items[*link.AccessoryCatalogID]; ok {
				link.CatalogEntry = &entry
			}
		}
		if link.AccessoryEquipmentID != nil && r.equipmentRepo != nil {
			if target, ok := r.equipmentRepo.items[*link.AccessoryEquipmentID]; ok {
				link.TargetEquipment = &target
			}
		}
		out = append(out, link)
	}
	return out, nil
}

func (r *fakeAccessoryRepo) ListAvailableTargets(ctx context.Context, parentID uint64) ([]entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	linked := make(map[uint64]bool)
	for _, link := range r.links {
		if link.ParentEquipmentID == parentID && link.AccessoryEquipmentID != nil {
			linked[*link.AccessoryEquipmentID] = true
		}
	}

	var out []entities.Equipment
	for id, e := range r.equipmentRepo.items {
		if id == parentID || linked[id] {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeAccessoryRepo) CreateLink(ctx context.Context, tx pgx.Tx, link entities.EquipmentAccessory) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	link.ID = r.nextID
	r.links[link.ID] = link
	return link.ID, nil
}

func (r *fakeAccessoryRepo) DeleteLink(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.links, id)
	return nil
}

func (r *fakeAccessoryRepo) DeleteByEquipment(ctx context.Context, tx pgx.Tx, equipmentID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, link := range r.links {
		if link.ParentEquipmentID == equipmentID {
			delete(r.links, id)
			continue
		}
		if link.AccessoryEquipmentID != nil && *link.AccessoryEquipmentID == equipmentID {
			delete(r.links, id)
		}
	}
	return nil
}

type fakeCatalogRepo struct {
	mu     sync.Mutex
	nextID uint64
	items  map[uint64]entities.AccessoryCatalog
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{items: make(map[uint64]entities.AccessoryCatalog)}
}

func (r *fakeCatalogRepo) GetByBrand(ctx context.Context, brand string) ([]entities.AccessoryCatalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.AccessoryCatalog
	for id := uint64(1); id <= r.nextID; id++ {
		if entry, ok := r.items[id]; ok && entry.Brand == brand {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) FindEntry(ctx context.Context, id uint64) (*entities.AccessoryCatalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

func (r *fakeCatalogRepo) CreateEntry(ctx context.Context, tx pgx.Tx, entry entities.AccessoryCatalog) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	entry.ID = r.nextID
	r.items[entry.ID] = entry
	return entry.ID, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uint64]entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]entities.User)}
}

func (r *fakeUserRepo) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) GetUserRole(ctx context.Context, id uint64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return u.Role, nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user entities.User) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uint64(len(r.users) + 1)
	r.users[user.ID] = user
	return user.ID, nil
}
