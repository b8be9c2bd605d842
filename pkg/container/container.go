package container

import (
	"context"
	"fmt"

	"waterpolo-backend/internal/config"
	"waterpolo-backend/internal/infrastructure/database"
	"waterpolo-backend/internal/infrastructure/queue"
	"waterpolo-backend/internal/infrastructure/storage"
	"waterpolo-backend/pkg/jwt"
	"waterpolo-backend/pkg/logger"

	recruitHandler "waterpolo-backend/internal/domains/recruit/handler"
	recruitRepo "waterpolo-backend/internal/domains/recruit/repository"
	recruitService "waterpolo-backend/internal/domains/recruit/service"
	rosterHandler "waterpolo-backend/internal/domains/roster/handler"
	rosterRepo "waterpolo-backend/internal/domains/roster/repository"
	rosterService "waterpolo-backend/internal/domains/roster/service"
	seasonHandler "waterpolo-backend/internal/domains/season/handler"
	seasonRepo "waterpolo-backend/internal/domains/season/repository"
	seasonService "waterpolo-backend/internal/domains/season/service"
	userHandler "waterpolo-backend/internal/domains/user/handler"
	userRepo "waterpolo-backend/internal/domains/user/repository"
	userService "waterpolo-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Storage     *storage.MinIOStorage
	QueueClient *queue.Client
	JWTManager  *jwt.Manager

	RosterRepo  rosterRepo.Repository
	SeasonRepo  seasonRepo.Repository
	RecruitRepo recruitRepo.Repository
	UserRepo    userRepo.Repository

	RosterService  rosterService.Service
	SeasonService  seasonService.Service
	RecruitService recruitService.Service
	UserService    userService.Service

	RosterHandler  *rosterHandler.RosterHandler
	SeasonHandler  *seasonHandler.SeasonHandler
	RecruitHandler *recruitHandler.RecruitHandler
	UserHandler    *userHandler.UserHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Storage = minioStorage

	c.QueueClient = queue.NewClient(cfg.Redis)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	c.RosterRepo = rosterRepo.NewPostgresRepository(db.Pool)
	c.SeasonRepo = seasonRepo.NewPostgresRepository(db.Pool)
	c.RecruitRepo = recruitRepo.NewPostgresRepository(db.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)

	processor := storage.NewImageProcessor(cfg.Uploads.MaxImageBytes, cfg.Uploads.MaxImageEdge)

	c.RosterService = rosterService.NewRosterService(c.RosterRepo, c.Storage, processor, c.QueueClient)
	c.SeasonService = seasonService.NewSeasonService(c.SeasonRepo)
	c.RecruitService = recruitService.NewRecruitService(c.RecruitRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)

	c.RosterHandler = rosterHandler.NewRosterHandler(c.RosterService)
	c.SeasonHandler = seasonHandler.NewSeasonHandler(c.SeasonService)
	c.RecruitHandler = recruitHandler.NewRecruitHandler(c.RecruitService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases held connections. Called on shutdown.
func (c *Container) Cleanup() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
