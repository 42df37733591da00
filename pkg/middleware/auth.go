package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/pkg/constants"
	"fleet-system/pkg/contextkeys"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/service"
	"fleet-system/pkg/utils"
)

// RoleLookup resolve o papel de um usuário. Implementado pelo
// AuthPermissionService (consulta ao banco com cache em Redis).
type RoleLookup interface {
	GetUserRole(ctx context.Context, userID uint64) (string, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	roles      RoleLookup
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, roles RoleLookup, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		roles:      roles,
		logger:     logger,
	}
}

// Auth valida o token Bearer e injeta o UserID no contexto da requisição.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: cabeçalho Authorization vazio")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: formato inválido do cabeçalho Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: falha na validação do token", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: tentativa de acesso com refresh token")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.UserIDKey, claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdmin restringe o acesso à visão de histórico. É apenas um
// bloqueio de visibilidade na camada HTTP, não uma fronteira de segurança
// no nível das linhas.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Request().Context().Value(contextkeys.UserIDKey).(uint64)
		if !ok {
			return utils.ErrorResponse(c, apperrors.ErrUserIDNotFoundInContext, m.logger)
		}

		role, err := m.roles.GetUserRole(c.Request().Context(), userID)
		if err != nil {
			m.logger.Error("RequireAdmin: falha ao resolver papel do usuário", zap.Uint64("userID", userID), zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if role != constants.RoleAdmin {
			m.logger.Warn("RequireAdmin: acesso negado", zap.Uint64("userID", userID), zap.String("role", role))
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.UserRoleKey, role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
