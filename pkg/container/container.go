package container

import (
	"context"
	"fmt"
	"log"

	"manual-backend/internal/config"
	contentHandler "manual-backend/internal/domains/content/handler"
	contentRepo "manual-backend/internal/domains/content/repository"
	contentService "manual-backend/internal/domains/content/service"
	uploadHandler "manual-backend/internal/domains/upload/handler"
	uploadService "manual-backend/internal/domains/upload/service"
	infraCache "manual-backend/internal/infrastructure/cache"
	"manual-backend/internal/infrastructure/database"
	"manual-backend/internal/infrastructure/storage"
	"manual-backend/pkg/cache"
	"manual-backend/pkg/logger"

	"manual-backend/internal/domains/content"
	"manual-backend/internal/domains/upload"
)

// Container holds every dependency of the application and is the root
// of the dependency graph. All members are singletons living for the
// process lifetime.
type Container struct {
	// Infrastructure
	Config  *config.Config
	DB      *database.PostgresDB
	Cache   cache.Cache
	Storage *storage.MinIOStorage

	// Content domain
	ContentRepo    content.Repository
	ContentService content.Service
	ContentHandler *contentHandler.ContentHandler

	// Upload pipeline
	UploadService upload.Service
	UploadHandler *uploadHandler.UploadHandler
}

// NewContainer initializes the whole graph in dependency order:
//
//  1. Config (depends on nothing)
//  2. Infrastructure (DB, cache, object storage) - depends on config
//  3. Repositories - depend on infrastructure
//  4. Services - depend on repositories
//  5. Handlers - depend on services
//
// Any failure aborts startup.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	db := database.NewPostgresDB(cfg.LoadDatabaseConfig())
	if err := db.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 3: INITIALIZE REDIS CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	c.Storage = minioStorage

	// ========================================
	// STEP 5: WIRE DOMAINS
	// ========================================
	devMode := !cfg.IsProduction()

	c.ContentRepo = contentRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.ContentService = contentService.NewContentService(c.ContentRepo)
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentService, devMode)

	processor := storage.NewImageProcessor()
	c.UploadService = uploadService.NewUploadService(minioStorage, processor)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService, devMode)

	log.Println("✅ Container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources. Safe to call on a
// partially initialized container.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close redis: %v", err)
			}
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
