package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"eventgallery-backend/internal/config"
	infraCache "eventgallery-backend/internal/infrastructure/cache"
	"eventgallery-backend/internal/infrastructure/database"
	"eventgallery-backend/pkg/cache"
	"eventgallery-backend/pkg/editwindow"
	"eventgallery-backend/pkg/token"

	adminHandler "eventgallery-backend/internal/domains/admin/handler"
	adminRepo "eventgallery-backend/internal/domains/admin/repository"
	adminService "eventgallery-backend/internal/domains/admin/service"
	customerHandler "eventgallery-backend/internal/domains/customer/handler"
	customerRepo "eventgallery-backend/internal/domains/customer/repository"
	customerService "eventgallery-backend/internal/domains/customer/service"
	eventHandler "eventgallery-backend/internal/domains/event/handler"
	eventRepo "eventgallery-backend/internal/domains/event/repository"
	eventService "eventgallery-backend/internal/domains/event/service"
	guestHandler "eventgallery-backend/internal/domains/guest/handler"
	guestRepo "eventgallery-backend/internal/domains/guest/repository"
	guestService "eventgallery-backend/internal/domains/guest/service"
	identityService "eventgallery-backend/internal/domains/identity/service"
	imageHandler "eventgallery-backend/internal/domains/image/handler"
	imageRepo "eventgallery-backend/internal/domains/image/repository"
	imageService "eventgallery-backend/internal/domains/image/service"
	shareHandler "eventgallery-backend/internal/domains/share/handler"
	shareRepo "eventgallery-backend/internal/domains/share/repository"
	shareService "eventgallery-backend/internal/domains/share/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root of
// the dependency graph. All members are singletons for the app lifetime.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config       *config.Config
	DB           *database.PostgresDB
	Cache        cache.Cache
	TokenManager *token.Manager
	EditPolicy   editwindow.Policy

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	CustomerRepo customerRepo.CustomerRepository
	EventRepo    eventRepo.EventRepository
	GuestRepo    guestRepo.GuestRepository
	ImageRepo    imageRepo.ImageRepository
	ShareRepo    shareRepo.ShareLinkRepository
	StatsRepo    adminRepo.StatsRepository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	IdentityResolver *identityService.Resolver
	CustomerService  customerService.CustomerService
	EventService     eventService.EventService
	GuestService     guestService.GuestService
	ImageService     imageService.ImageService
	ShareService     shareService.ShareLinkService
	AdminService     adminService.AdminService

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	CustomerHandler *customerHandler.CustomerHandler
	EventHandler    *eventHandler.EventHandler
	GuestHandler    *guestHandler.GuestHandler
	ImageHandler    *imageHandler.ImageHandler
	ShareHandler    *shareHandler.ShareHandler
	AdminHandler    *adminHandler.AdminHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph. Initialization order
// matters: config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

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
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if err := redisCache.Connect(context.Background()); err != nil {
		// cache is an accelerator, not a dependency; keep booting
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: SHARED POLICY OBJECTS
	// ========================================

	c.TokenManager = token.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
	)

	c.EditPolicy, err = editwindow.NewPolicy(cfg.Gallery.GuestModifyGraceDays)
	if err != nil {
		return nil, fmt.Errorf("invalid edit window policy: %w", err)
	}

	// ========================================
	// STEP 5: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CustomerRepo = customerRepo.NewPostgresCustomerRepository(pool)
	c.EventRepo = eventRepo.NewPostgresEventRepository(pool)
	c.GuestRepo = guestRepo.NewPostgresGuestRepository(pool)
	c.ImageRepo = imageRepo.NewPostgresImageRepository(pool)
	c.ShareRepo = shareRepo.NewPostgresShareLinkRepository(pool)
	c.StatsRepo = adminRepo.NewPostgresStatsRepository(pool)
}

func (c *Container) initServices() {
	storageBaseURL := c.Config.Storage.PublicBaseURL

	c.IdentityResolver = identityService.NewResolver(c.TokenManager)

	c.CustomerService = customerService.NewCustomerService(c.CustomerRepo, c.TokenManager)

	c.EventService = eventService.NewEventService(
		c.EventRepo,
		c.ImageRepo,
		c.Cache,
		storageBaseURL,
	)

	c.GuestService = guestService.NewGuestService(
		c.GuestRepo,
		c.EventRepo,
		c.ImageRepo,
		c.TokenManager,
		c.EditPolicy,
	)

	c.ImageService = imageService.NewImageService(
		c.ImageRepo,
		c.EventRepo,
		c.EditPolicy,
		storageBaseURL,
	)

	c.ShareService = shareService.NewShareLinkService(
		c.ShareRepo,
		c.EventRepo,
		c.ImageRepo,
		storageBaseURL,
	)

	c.AdminService = adminService.NewAdminService(
		c.Config.Admin.Email,
		c.Config.Admin.Password,
		c.StatsRepo,
		c.TokenManager,
	)
}

func (c *Container) initHandlers() {
	c.CustomerHandler = customerHandler.NewCustomerHandler(c.CustomerService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.GuestHandler = guestHandler.NewGuestHandler(c.GuestService)
	c.ImageHandler = imageHandler.NewImageHandler(c.ImageService)
	c.ShareHandler = shareHandler.NewShareHandler(c.ShareService)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
}

// ========================================
// CLEANUP
// ========================================

// Close releases infrastructure resources on shutdown
func (c *Container) Close() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connection closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Redis close failed: %v", err)
		} else {
			log.Println("✅ Redis connection closed")
		}
	}

	log.Println("👋 Container cleanup complete")
}
