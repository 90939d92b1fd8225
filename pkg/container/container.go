package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"publishing-backend/internal/config"
	infraCache "publishing-backend/internal/infrastructure/cache"
	"publishing-backend/internal/infrastructure/database"
	"publishing-backend/pkg/cache"
	"publishing-backend/pkg/jwt"

	"publishing-backend/internal/domains/author"
	authorHandler "publishing-backend/internal/domains/author/handler"
	authorRepo "publishing-backend/internal/domains/author/repository"
	authorService "publishing-backend/internal/domains/author/service"

	"publishing-backend/internal/domains/title"
	titleHandler "publishing-backend/internal/domains/title/handler"
	titleRepo "publishing-backend/internal/domains/title/repository"
	titleService "publishing-backend/internal/domains/title/service"

	"publishing-backend/internal/domains/banner"
	bannerHandler "publishing-backend/internal/domains/banner/handler"
	bannerRepo "publishing-backend/internal/domains/banner/repository"
	bannerService "publishing-backend/internal/domains/banner/service"

	"publishing-backend/internal/domains/homepage"
	homepageHandler "publishing-backend/internal/domains/homepage/handler"
	homepageRepo "publishing-backend/internal/domains/homepage/repository"
	homepageService "publishing-backend/internal/domains/homepage/service"

	"publishing-backend/internal/domains/export"
	exportHandler "publishing-backend/internal/domains/export/handler"
	exportService "publishing-backend/internal/domains/export/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Every component is a
// singleton built once at startup, in dependency order.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AuthorRepo   author.Repository
	TitleRepo    title.Repository
	BannerRepo   banner.Repository
	HomepageRepo homepage.Repository

	AuthorService   author.Service
	TitleService    title.Service
	BannerService   banner.Service
	HomepageService homepage.Service
	ExportService   export.Service

	AuthorHandler   *authorHandler.AuthorHandler
	TitleHandler    *titleHandler.TitleHandler
	BannerHandler   *bannerHandler.BannerHandler
	HomepageHandler *homepageHandler.HomepageHandler
	ExportHandler   *exportHandler.ExportHandler
}

// NewContainer builds the full dependency graph:
// config, then infrastructure, then repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[Container] Config loaded (environment: %s)", cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("[Container] Database connected")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	// Connect is not part of the Cache interface.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Cached listings fall through to the database, so a Redis
			// outage is not fatal.
			log.Printf("[Container] Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("[Container] Redis connected")
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("[Container] Initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.TitleRepo = titleRepo.NewPostgresRepository(pool)
	c.BannerRepo = bannerRepo.NewPostgresRepository(pool)
	c.HomepageRepo = homepageRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.JWTManager)
	c.TitleService = titleService.NewTitleService(c.TitleRepo)
	c.BannerService = bannerService.NewBannerService(c.BannerRepo, c.Cache)
	c.HomepageService = homepageService.NewHomepageService(c.HomepageRepo, c.Cache)
	c.ExportService = exportService.NewExportService(c.AuthorRepo, c.TitleRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.TitleHandler = titleHandler.NewTitleHandler(c.TitleService)
	c.BannerHandler = bannerHandler.NewBannerHandler(c.BannerService)
	c.HomepageHandler = homepageHandler.NewHomepageHandler(c.HomepageService)
	c.ExportHandler = exportHandler.NewExportHandler(c.ExportService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Println("[Container] Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("[Container] Failed to close Redis: %v", err)
			} else {
				log.Println("[Container] Redis connections closed")
			}
		}
	}
}
