package app

import (
	"context"
	"fmt"
	"time"

	"jobboard_backend/internal/cache"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/repositories/memory"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	store, err := buildStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize store", "error", err)
	}

	if err := seedFirstAdmin(store, cfg); err != nil {
		// Без админа реестр ролей можно загрузить через /access/initialize,
		// но ошибка БД на старте - повод не запускаться.
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	ginRouter := SetupRouter(cfg, store)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// buildStore выбирает бэкенд хранилища по конфигу.
// memory используется в тестах и локальной разработке без БД.
func buildStore(cfg *config.Config) (*repositories.Store, error) {
	switch cfg.Database.Driver {
	case "memory":
		logger.Warn("Using in-memory store, data will not survive a restart")
		return memory.NewStore(), nil

	case "mysql":
		logger.Info("Connecting to database...", "driver", "mysql")
		gormDB, err := gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mysql: %w", err)
		}
		if err := repositories.AutoMigrate(gormDB); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Database connected")
		return repositories.NewGormStore(gormDB), nil

	case "postgres", "":
		logger.Info("Connecting to database...", "driver", "postgres")
		gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("database unavailable: %w", err)
		}
		if err := repositories.AutoMigrate(gormDB); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Database connected")
		return repositories.NewGormStore(gormDB), nil

	default:
		return nil, fmt.Errorf("unknown database driver: %q", cfg.Database.Driver)
	}
}

func SetupRouter(cfg *config.Config, store *repositories.Store) *gin.Engine {
	// Redis опционален: без него лента вакансий просто не кэшируется
	redisClient := cache.NewRedisClient(cfg)
	feedCache := cache.NewListingCache(redisClient, 30*time.Second)

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(store, feedCache)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(store *repositories.Store, feedCache *cache.ListingCache) *services.ServiceContainer {
	return &services.ServiceContainer{
		AccessService:      services.NewAccessService(store.Roles),
		ProfileService:     services.NewProfileService(store.Profiles),
		ListingService:     services.NewListingService(store.Listings, store.Profiles, feedCache),
		ApplicationService: services.NewApplicationService(store.Applications, store.Listings, store.Roles),
		PaymentService:     services.NewPaymentService(store.Payments, store.Roles),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AccessHandler:      handlers.NewAccessHandler(baseHandler, container.AccessService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, container.ProfileService),
		ListingHandler:     handlers.NewListingHandler(baseHandler, container.ListingService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		PaymentHandler:     handlers.NewPaymentHandler(baseHandler, container.PaymentService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin выдает роль admin principal-у из конфига. Повторный
// запуск ничего не меняет, если роль уже назначена.
func seedFirstAdmin(store *repositories.Store, cfg *config.Config) error {
	principal := cfg.Access.FirstAdmin
	if principal == "" {
		logger.Warn("FIRST_ADMIN_PRINCIPAL is not set. Skipping admin seeding.")
		return nil
	}

	ctx := context.Background()
	role, err := store.Roles.Get(ctx, principal)
	if err != nil {
		return fmt.Errorf("failed to check admin role: %w", err)
	}
	if role == models.UserRoleAdmin {
		logger.Info("Admin already exists. Skipping creation.", "principal", principal)
		return nil
	}

	if err := store.Roles.Set(ctx, principal, models.UserRoleAdmin); err != nil {
		return fmt.Errorf("failed to assign admin role: %w", err)
	}
	logger.Info("✅ Assigned admin role to first admin", "principal", principal)
	return nil
}
