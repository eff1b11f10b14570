package provider

import (
	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/queue"
	"github.com/storefront-next/internal/repository"
	"github.com/storefront-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	BannerRepo   repository.BannerRepository
	CouponRepo   repository.CouponRepository

	// Services
	CatalogService       *service.CatalogService
	CategoryService      *service.CategoryService
	BannerService        *service.BannerService
	CouponService        *service.CouponService
	PaymentMethodService *service.PaymentMethodService
	CartService          *service.CartService
	OrderService         *service.OrderService
	SessionStore         *service.SessionStore
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo, c.Config.Catalog)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.BannerService = service.NewBannerService(c.BannerRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo, c.Config.Pricing, c.Config.Catalog)
	c.PaymentMethodService = service.NewPaymentMethodService()
	c.CartService = service.NewCartService(c.CatalogService, c.CouponService)

	var publisher service.OrderPlacedPublisher
	if c.QueueClient != nil {
		publisher = c.QueueClient
	}
	c.OrderService = service.NewOrderService(c.CouponService, c.PaymentMethodService, publisher)
	c.SessionStore = service.NewSessionStore(c.Config.Session, c.BannerService)
}

// Close 释放容器持有的资源
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.SessionStore != nil {
		c.SessionStore.Close()
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
