package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsroom_backend/internal/auth"
	"newsroom_backend/internal/config"
	"newsroom_backend/internal/email"
	"newsroom_backend/internal/handlers"
	"newsroom_backend/internal/logger"
	"newsroom_backend/internal/middleware"
	"newsroom_backend/internal/models"
	"newsroom_backend/internal/ratelimit"
	"newsroom_backend/internal/repositories"
	"newsroom_backend/internal/routes"
	"newsroom_backend/internal/services"
	"newsroom_backend/internal/validator"
	"newsroom_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.Bookmark{},
	); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}
	if err := seedCategories(gormDB); err != nil {
		logger.Fatal("Failed to seed categories", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interval := time.Duration(cfg.Scheduler.PublishIntervalSeconds) * time.Second
	publishWorker := workers.NewPublishWorker(gormDB, repositories.NewPostRepository(), interval)
	publishWorker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	ginRouter := initializeGinRouter(cfg, gormDB)

	appHandlers := initializeHandlers(serviceContainer, ginRouter)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg)
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = &MockEmailProvider{}
		logger.Warn("Email sending disabled, using mock provider")
	}

	return services.NewServiceContainer(emailProvider)
}

func initializeHandlers(container *services.ServiceContainer, engine *gin.Engine) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, container.UserService)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:     handlers.NewUserHandler(baseHandler, container.UserService),
		CategoryHandler: handlers.NewCategoryHandler(baseHandler, container.CategoryService),
		PostHandler:     handlers.NewPostHandler(baseHandler, container.PostService),
		CommentHandler:  handlers.NewCommentHandler(baseHandler, container.CommentService),
		BookmarkHandler: handlers.NewBookmarkHandler(baseHandler, container.BookmarkService),
		SystemHandler:   handlers.NewSystemHandler(baseHandler, engine.Routes),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimitMiddleware(buildLimiter(cfg)))
	}
	router.Use(middleware.DBMiddleware(db))
	return router
}

// buildLimiter выбирает реализацию лимитера по конфигу:
// память для одного экземпляра, Redis для нескольких.
func buildLimiter(cfg *config.Config) ratelimit.Limiter {
	if cfg.RateLimit.Store == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		})
		logger.Info("Redis rate limiter initialized", "addr", cfg.RateLimit.RedisAddr)
		return ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.RequestsPerMinute)
	}
	return ratelimit.NewMemoryLimiter(cfg.RateLimit.RequestsPerMinute)
}

// seedFirstAdmin создает стартового администратора, если его еще нет
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	username := cfg.FirstAdmin.Username
	password := cfg.FirstAdmin.Password

	if username == "" || password == "" {
		logger.Warn("first_admin is not configured, skipping admin seeding")
		return nil
	}

	var admin models.User
	result := db.Where("username = ?", username).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "username", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:       username,
		FullName:       "Administrator",
		HashedPassword: hashed,
		Role:           models.UserRoleAdmin,
		IsVerified:     true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "username", username)
	return nil
}

// seedCategories наполняет пустую таблицу стартовым деревом рубрик
func seedCategories(db *gorm.DB) error {
	categoryRepo := repositories.NewCategoryRepository()

	hasAny, err := categoryRepo.HasAny(db)
	if err != nil {
		return fmt.Errorf("failed to check categories: %w", err)
	}
	if hasAny {
		return nil
	}

	tree := map[string][]string{
		"National":       {"Politics", "Economy", "Law & Justice"},
		"International":  {"Asia", "Europe", "Americas"},
		"Sports":         {"Cricket", "Football"},
		"Science & Tech": {"Technology", "Health", "Environment"},
		"Entertainment":  {"Film", "Music"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for rootName, topics := range tree {
			root := &models.Category{Name: rootName}
			if err := tx.Create(root).Error; err != nil {
				return err
			}
			for _, topicName := range topics {
				topic := &models.Category{Name: topicName, ParentID: &root.ID}
				if err := tx.Create(topic).Error; err != nil {
					return err
				}
			}
		}
		logger.Info("Default categories seeded")
		return nil
	})
}
