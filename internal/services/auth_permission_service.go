package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fleet-system/internal/repositories"
	"fleet-system/pkg/config"
	"fleet-system/pkg/constants"
)

// AuthPermissionService resolve o papel do usuário para o gate de
// administrador. A resposta fica no Redis pelo TTL configurado; falha de
// cache nunca bloqueia a requisição, apenas volta ao banco.
type AuthPermissionService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	cfg       config.AuthConfig
	logger    *zap.Logger
}

func NewAuthPermissionService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cfg config.AuthConfig,
	logger *zap.Logger,
) *AuthPermissionService {
	return &AuthPermissionService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *AuthPermissionService) GetUserRole(ctx context.Context, userID uint64) (string, error) {
	cacheKey := fmt.Sprintf(constants.CacheKeyUserRole, userID)

	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		return cached, nil
	}

	role, err := s.userRepo.GetUserRole(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := s.cacheRepo.Set(ctx, cacheKey, role, s.cfg.RoleCacheTTL); err != nil {
		s.logger.Warn("GetUserRole: falha ao gravar o papel no cache",
			zap.Uint64("userId", userID), zap.Error(err))
	}

	return role, nil
}

// InvalidateUserRole remove o papel em cache, usado quando o papel muda.
func (s *AuthPermissionService) InvalidateUserRole(ctx context.Context, userID uint64) error {
	return s.cacheRepo.Del(ctx, fmt.Sprintf(constants.CacheKeyUserRole, userID))
}
