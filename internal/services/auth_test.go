package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/pkg/config"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/service"
	"fleet-system/pkg/utils"
)

type fakeCacheRepo struct {
	mu     sync.Mutex
	values map[string]string
	sets   int
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: make(map[string]string)}
}

func (r *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return value, nil
}

func (r *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value.(string)
	r.sets++
	return nil
}

func (r *fakeCacheRepo) Del(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		delete(r.values, key)
	}
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, role string) uint64 {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	id, err := repo.CreateUser(context.Background(), entities.User{
		Name: "Usuário de Teste", Email: email, PasswordHash: hash, Role: role,
	})
	require.NoError(t, err)
	return id
}

func newTestJWTService() service.JWTService {
	return service.NewJWTService("test-secret", time.Minute, time.Hour, zap.NewNop())
}

func TestLoginIssuesTokenPair(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUser(t, userRepo, "admin@fleet.local", "senha-forte", "admin")

	svc := NewAuthService(userRepo, newTestJWTService(), zap.NewNop())

	pair, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "admin@fleet.local", Password: "senha-forte",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "admin", pair.User.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUser(t, userRepo, "admin@fleet.local", "senha-forte", "admin")

	svc := NewAuthService(userRepo, newTestJWTService(), zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "admin@fleet.local", Password: "senha-errada",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginDTO{
		Email: "ninguem@fleet.local", Password: "tanto-faz",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUser(t, userRepo, "admin@fleet.local", "senha-forte", "admin")

	svc := NewAuthService(userRepo, newTestJWTService(), zap.NewNop())

	pair, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "admin@fleet.local", Password: "senha-forte",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)

	renewed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)
}

func TestGetUserRoleCachesLookup(t *testing.T) {
	userRepo := newFakeUserRepo()
	userID := seedUser(t, userRepo, "op@fleet.local", "senha", "operator")
	cacheRepo := newFakeCacheRepo()

	svc := NewAuthPermissionService(userRepo, cacheRepo,
		config.AuthConfig{RoleCacheTTL: time.Minute}, zap.NewNop())

	role, err := svc.GetUserRole(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "operator", role)
	assert.Equal(t, 1, cacheRepo.sets)

	// segunda consulta resolve pelo cache, sem novo Set
	role, err = svc.GetUserRole(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "operator", role)
	assert.Equal(t, 1, cacheRepo.sets)

	require.NoError(t, svc.InvalidateUserRole(context.Background(), userID))
	_, err = svc.GetUserRole(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, cacheRepo.sets, "após invalidar, volta ao banco e repovoa o cache")
}
