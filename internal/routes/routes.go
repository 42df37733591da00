package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/repositories"
	"fleet-system/internal/services"
	"fleet-system/pkg/config"
	"fleet-system/pkg/middleware"
	"fleet-system/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: registrando as rotas")

	api := e.Group("/api")

	// --- repositórios ---
	txManager := repositories.NewTxManager(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	sequenceRepo := repositories.NewSequenceRepository(dbConn)
	historyRepo := repositories.NewEquipmentHistoryRepository(dbConn)
	accessoryRepo := repositories.NewEquipmentAccessoryRepository(dbConn)
	catalogRepo := repositories.NewAccessoryCatalogRepository(dbConn)
	pilotRepo := repositories.NewPilotRepository(dbConn)
	sessionRepo := repositories.NewFlightSessionRepository(dbConn)

	// --- serviços ---
	authPermissionService := services.NewAuthPermissionService(userRepo, cacheRepo, cfg.Auth, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	equipmentService := services.NewEquipmentService(
		txManager, equipmentRepo, sequenceRepo, historyRepo, accessoryRepo, userRepo, logger)
	catalogService := services.NewAccessoryCatalogService(txManager, catalogRepo, equipmentRepo, logger)
	accessoryService := services.NewEquipmentAccessoryService(
		txManager, accessoryRepo, catalogRepo, equipmentRepo, logger)
	historyService := services.NewEquipmentHistoryService(historyRepo, logger)
	pilotService := services.NewPilotService(pilotRepo, logger)
	sessionService := services.NewFlightSessionService(sessionRepo, pilotRepo, equipmentRepo, logger)

	// --- middleware ---
	authMW := middleware.NewAuthMiddleware(jwtSvc, authPermissionService, logger)
	secureGroup := api.Group("", authMW.Auth)

	// --- rotas ---
	runAuthRouter(api, authService, logger)
	runEquipmentRouter(secureGroup, equipmentService, accessoryService, logger)
	runAccessoryCatalogRouter(secureGroup, catalogService, logger)
	runEquipmentAccessoryRouter(secureGroup, accessoryService, logger)
	runEquipmentHistoryRouter(secureGroup, historyService, logger, authMW)
	runPilotRouter(secureGroup, pilotService, logger)
	runFlightSessionRouter(secureGroup, sessionService, logger)
	runFleetReportRouter(secureGroup, equipmentService, logger)

	logger.Info("InitRouter: rotas registradas")
}
