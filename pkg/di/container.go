package di

import (
	"gorm.io/gorm"

	"family-planner/application/serviceimpl"
	"family-planner/domain/repositories"
	"family-planner/domain/services"
	"family-planner/infrastructure/postgres"
	"family-planner/interfaces/api/handlers"
	"family-planner/pkg/config"
	"family-planner/pkg/logger"
)

type Container struct {
	Config *config.Config

	DB *gorm.DB

	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	TaskService      services.TaskService
	BootstrapService services.BootstrapService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initDatabase(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized", "level", c.Config.Log.Level, "format", c.Config.Log.Format)
	return nil
}

func (c *Container) initDatabase() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,

		// Query logging is only useful while developing locally.
		LogQueries: c.Config.IsDevelopment(),
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository)
	c.BootstrapService = serviceimpl.NewBootstrapService(c.UserRepository, c.TaskRepository)
	logger.Info("Services initialized")
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices bundles the services the HTTP layer needs.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService:      c.TaskService,
		BootstrapService: c.BootstrapService,
	}
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
