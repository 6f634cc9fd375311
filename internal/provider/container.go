package provider

import (
	"github.com/bunai-store/internal/authz"
	"github.com/bunai-store/internal/cache"
	"github.com/bunai-store/internal/config"
	"github.com/bunai-store/internal/logger"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/queue"
	"github.com/bunai-store/internal/repository"
	"github.com/bunai-store/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo       repository.AdminRepository
	UserRepo        repository.UserRepository
	ProductRepo     repository.ProductRepository
	OrderRepo       repository.OrderRepository
	CouponRepo      repository.CouponRepository
	InquiryRepo     repository.InquiryRepository
	StockNotifyRepo repository.StockNotificationRepository

	// Services
	AuthzService            *authz.Service
	AuthService             *service.AuthService
	UserAuthService         *service.UserAuthService
	ProductService          *service.ProductService
	CouponService           *service.CouponService
	OrderService            *service.OrderService
	InquiryService          *service.InquiryService
	StockNotificationService *service.StockNotificationService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
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
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.InquiryRepo = repository.NewInquiryRepository(db)
	c.StockNotifyRepo = repository.NewStockNotificationRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.Config, c.ProductRepo, c.QueueClient)
	c.CouponService = service.NewCouponService(c.CouponRepo)
	c.OrderService = service.NewOrderService(c.Config, c.OrderRepo, c.ProductRepo, c.CouponService, c.QueueClient)
	c.InquiryService = service.NewInquiryService(c.InquiryRepo, c.ProductRepo)
	c.StockNotificationService = service.NewStockNotificationService(c.StockNotifyRepo, c.ProductRepo)
}
