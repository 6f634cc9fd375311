package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bunai-store/internal/cache"
	"github.com/bunai-store/internal/catalog"
	"github.com/bunai-store/internal/config"
	"github.com/bunai-store/internal/logger"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/queue"
	"github.com/bunai-store/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// SKU 随机后缀撞库时的重试上限
	maxSKUAttempts = 5

	productListCacheTTL    = 5 * time.Minute
	productListCachePrefix = "catalog:list"
	productDetailCacheTTL  = 5 * time.Minute
)

// ProductService 商品服务
type ProductService struct {
	cfg         *config.Config
	productRepo repository.ProductRepository
	queueClient *queue.Client
}

// NewProductService 创建商品服务
func NewProductService(cfg *config.Config, productRepo repository.ProductRepository, queueClient *queue.Client) *ProductService {
	return &ProductService{
		cfg:         cfg,
		productRepo: productRepo,
		queueClient: queueClient,
	}
}

// ProductInput 商品创建/更新入参
type ProductInput struct {
	Name            string
	Category        string
	Color           string
	FabricType      string
	Size            string
	Description     string
	ImageURL        string
	Images          []string
	WholesalePrice  decimal.Decimal
	RetailPrice     decimal.Decimal
	DiscountPercent *int // nil 表示使用默认折扣
	IsNew           bool
	IsBestSeller    bool
	StockQuantity   int
}

// ProductDetail 商品详情视图：自身行 + 展示价 + 同名变体
type ProductDetail struct {
	models.Product
	DisplayPrice models.Money      `json:"display_price"`
	Variants     []catalog.Variant `json:"variants"`
}

func (s *ProductService) resolveDiscountPercent(input *int) (int, error) {
	if input == nil {
		return s.cfg.Catalog.DefaultDiscountPercent, nil
	}
	if !catalog.ValidDiscountPercent(*input) {
		return 0, ErrInvalidDiscount
	}
	return *input, nil
}

func validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrProductNameEmpty
	}
	if input.RetailPrice.IsNegative() || input.WholesalePrice.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

// Create 创建商品。slug 冲突时回填 <slug>-<id>，SKU 随机后缀撞库时重试。
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	percent, err := s.resolveDiscountPercent(input.DiscountPercent)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	color := strings.TrimSpace(input.Color)
	baseSlug := catalog.Slugify(name, color)

	product := &models.Product{
		Name:            name,
		Category:        strings.TrimSpace(input.Category),
		Color:           color,
		FabricType:      strings.TrimSpace(input.FabricType),
		Size:            strings.TrimSpace(input.Size),
		Description:     input.Description,
		ImageURL:        strings.TrimSpace(input.ImageURL),
		Images:          models.StringArray(input.Images),
		WholesalePrice:  models.NewMoneyFromDecimal(input.WholesalePrice),
		RetailPrice:     models.NewMoneyFromDecimal(input.RetailPrice),
		DiscountPercent: percent,
		IsNew:           input.IsNew,
		IsBestSeller:    input.IsBestSeller,
		StockQuantity:   input.StockQuantity,
	}

	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.productRepo.WithTx(tx)

		// SKU 先查重再插入：唯一索引冲突会中止 Postgres 事务，
		// 事务内不能靠重试 INSERT 消化撞库。
		sku := ""
		for attempt := 0; attempt < maxSKUAttempts; attempt++ {
			candidate := catalog.GenerateSKU(name, color)
			count, err := txRepo.CountBySKU(candidate, nil)
			if err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			sku = candidate
			break
		}
		if sku == "" {
			return ErrSKUExists
		}

		// 先用 SKU 小写作为占位 slug 落库，拿到自增 ID 后再回填正式 slug，
		// 保证 slug 唯一索引在整个事务内不被基础 slug 的并发冲突击中。
		product.SKU = sku
		product.Slug = strings.ToLower(sku)
		if err := txRepo.Create(product); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSKUExists
			}
			return err
		}

		finalSlug := baseSlug
		count, err := txRepo.CountBySlug(baseSlug, &product.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			finalSlug = catalog.SlugWithID(baseSlug, product.ID)
		}
		product.Slug = finalSlug
		if err := txRepo.UpdateColumns(product.ID, map[string]interface{}{"slug": finalSlug}); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlugExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCatalogCache()
	logger.Infow("product_created",
		"product_id", product.ID,
		"slug", product.Slug,
		"sku", product.SKU,
	)
	return product, nil
}

// Update 更新商品。名称或颜色变化时重新派生 slug，SKU 保持创建时的值。
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	percent, err := s.resolveDiscountPercent(input.DiscountPercent)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	name := strings.TrimSpace(input.Name)
	color := strings.TrimSpace(input.Color)
	wasOutOfStock := product.StockQuantity <= 0

	if name != product.Name || color != product.Color {
		baseSlug := catalog.Slugify(name, color)
		count, err := s.productRepo.CountBySlug(baseSlug, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			product.Slug = catalog.SlugWithID(baseSlug, id)
		} else {
			product.Slug = baseSlug
		}
	}

	product.Name = name
	product.Category = strings.TrimSpace(input.Category)
	product.Color = color
	product.FabricType = strings.TrimSpace(input.FabricType)
	product.Size = strings.TrimSpace(input.Size)
	product.Description = input.Description
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	product.Images = models.StringArray(input.Images)
	product.WholesalePrice = models.NewMoneyFromDecimal(input.WholesalePrice)
	product.RetailPrice = models.NewMoneyFromDecimal(input.RetailPrice)
	product.DiscountPercent = percent
	product.IsNew = input.IsNew
	product.IsBestSeller = input.IsBestSeller
	product.StockQuantity = input.StockQuantity

	if err := s.productRepo.Update(product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugExists
		}
		return nil, err
	}

	s.invalidateCatalogCache()
	if wasOutOfStock && product.StockQuantity > 0 {
		s.enqueueRestockNotify(product.ID)
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalogCache()
	return nil
}

// Restock 补货，库存从 0 变为正数时触发到货通知
func (s *ProductService) Restock(id uint, quantity int) (*models.Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	wasOutOfStock := product.StockQuantity <= 0
	affected, err := s.productRepo.AdjustStock(id, quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}

	product.StockQuantity += quantity
	s.invalidateCatalogCache()
	if wasOutOfStock {
		s.enqueueRestockNotify(id)
	}
	return product, nil
}

// ListGrouped 公开商品列表：同名商品聚合为一个逻辑商品
func (s *ProductService) ListGrouped(ctx context.Context, filter repository.ProductListFilter) ([]catalog.Group, error) {
	cacheKey := productListCacheKey(filter)
	var cached []catalog.Group
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	products, err := s.productRepo.ListAll(filter)
	if err != nil {
		return nil, err
	}
	groups := catalog.GroupByName(products)

	if err := cache.SetJSON(ctx, cacheKey, groups, productListCacheTTL); err != nil {
		logger.Warnw("product_list_cache_set_failed", "error", err)
	}
	return groups, nil
}

// ListAdmin 后台商品列表：按行返回，不聚合
func (s *ProductService) ListAdmin(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// GetDetailBySlug 商品详情：自身行 + 同名变体（排除自身）
func (s *ProductService) GetDetailBySlug(ctx context.Context, slug string) (*ProductDetail, error) {
	cacheKey := "catalog:detail:" + slug
	var cached ProductDetail
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	siblings, err := s.productRepo.ListByName(product.Name)
	if err != nil {
		return nil, err
	}

	detail := &ProductDetail{
		Product:      *product,
		DisplayPrice: models.NewMoneyFromDecimal(catalog.DisplayPrice(product.RetailPrice.Decimal, product.DiscountPercent)),
		Variants:     catalog.SiblingVariants(siblings, product.ID),
	}

	if err := cache.SetJSON(ctx, cacheKey, detail, productDetailCacheTTL); err != nil {
		logger.Warnw("product_detail_cache_set_failed", "error", err)
	}
	return detail, nil
}

// GetByID 后台按 ID 获取商品
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListCategories 去重分类列表
func (s *ProductService) ListCategories() ([]string, error) {
	return s.productRepo.ListCategories()
}

func (s *ProductService) invalidateCatalogCache() {
	ctx := context.Background()
	if err := cache.DelByPrefix(ctx, "catalog:"); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "error", err)
	}
}

func (s *ProductService) enqueueRestockNotify(productID uint) {
	if err := s.queueClient.EnqueueRestockNotify(queue.RestockNotifyPayload{ProductID: productID}); err != nil {
		logger.Warnw("restock_notify_enqueue_failed",
			"product_id", productID,
			"error", err,
		)
	}
}

func productListCacheKey(filter repository.ProductListFilter) string {
	boolFlag := func(v *bool) string {
		if v == nil {
			return "-"
		}
		if *v {
			return "1"
		}
		return "0"
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s:%s:%s:%s:%s",
		productListCachePrefix,
		filter.Category,
		filter.Color,
		filter.FabricType,
		filter.Search,
		boolFlag(filter.IsNew),
		boolFlag(filter.IsBestSeller),
		boolFlag(filter.InStock),
		filter.OrderBy,
	)
}
