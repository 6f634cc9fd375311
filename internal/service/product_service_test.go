package service

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/bunai-store/internal/config"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/queue"
	"github.com/bunai-store/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			Name:     "Bunai Handlooms",
			Currency: "INR",
		},
		Catalog: config.CatalogConfig{
			DefaultDiscountPercent: 20,
			PageSizeDefault:        20,
			PageSizeMax:            100,
		},
		WhatsApp: config.WhatsAppConfig{
			PhoneNumber:   "919812345678",
			MessageHeader: "Hello! I would like to place an order:",
		},
	}
}

func testQueueClient(t *testing.T) *queue.Client {
	t.Helper()
	client, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}
	return client
}

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	svc := NewProductService(testConfig(), repository.NewProductRepository(db), testQueueClient(t))
	return svc, db
}

func TestProductCreateDerivesSlugAndSKU(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	product, err := svc.Create(ProductInput{
		Name:        "Royal Banarasi Silk Saree",
		Color:       "Green",
		Category:    "sarees",
		RetailPrice: decimal.NewFromInt(12500),
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.Slug != "royal-banarasi-silk-saree-green" {
		t.Fatalf("unexpected slug: %s", product.Slug)
	}
	if !regexp.MustCompile(`^RBSS-GREEN-[A-Z0-9]{3}$`).MatchString(product.SKU) {
		t.Fatalf("unexpected sku: %s", product.SKU)
	}
	if product.DiscountPercent != 20 {
		t.Fatalf("default discount want 20 got %d", product.DiscountPercent)
	}
}

func TestProductCreateSlugCollisionAppendsID(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	first, err := svc.Create(ProductInput{
		Name:        "Collision Saree",
		Color:       "Indigo",
		RetailPrice: decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}

	// 同名同色的第二行只能拿到带 ID 后缀的 slug
	second, err := svc.Create(ProductInput{
		Name:        "Collision Saree",
		Color:       "Indigo",
		RetailPrice: decimal.NewFromInt(1100),
	})
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	if first.Slug != "collision-saree-indigo" {
		t.Fatalf("first slug want base got %s", first.Slug)
	}
	expected := fmt.Sprintf("collision-saree-indigo-%d", second.ID)
	if second.Slug != expected {
		t.Fatalf("second slug want %s got %s", expected, second.Slug)
	}
}

func TestProductCreateAfterDeleteGetsSuffixedSlug(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	first, err := svc.Create(ProductInput{
		Name:        "Archive Saree",
		Color:       "Teal",
		RetailPrice: decimal.NewFromInt(1500),
	})
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	if err := svc.Delete(first.ID); err != nil {
		t.Fatalf("delete first failed: %v", err)
	}

	// 软删除行仍占用 slug 唯一索引，重建同名同色商品必须落到带 ID 后缀的 slug
	second, err := svc.Create(ProductInput{
		Name:        "Archive Saree",
		Color:       "Teal",
		RetailPrice: decimal.NewFromInt(1600),
	})
	if err != nil {
		t.Fatalf("recreate after delete failed: %v", err)
	}
	expected := fmt.Sprintf("archive-saree-teal-%d", second.ID)
	if second.Slug != expected {
		t.Fatalf("recreated slug want %s got %s", expected, second.Slug)
	}
}

func TestProductCreateRejectsInvalidInput(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if _, err := svc.Create(ProductInput{Name: "  ", RetailPrice: decimal.NewFromInt(100)}); err != ErrProductNameEmpty {
		t.Fatalf("want ErrProductNameEmpty got %v", err)
	}

	bad := 120
	if _, err := svc.Create(ProductInput{
		Name:            "Bad Discount",
		RetailPrice:     decimal.NewFromInt(100),
		DiscountPercent: &bad,
	}); err != ErrInvalidDiscount {
		t.Fatalf("want ErrInvalidDiscount got %v", err)
	}
}

func TestProductUpdateRederivesSlugOnRename(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	product, err := svc.Create(ProductInput{
		Name:        "Rename Saree",
		Color:       "Red",
		RetailPrice: decimal.NewFromInt(900),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(product.ID, ProductInput{
		Name:        "Rename Saree",
		Color:       "Maroon",
		RetailPrice: decimal.NewFromInt(900),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "rename-saree-maroon" {
		t.Fatalf("slug not rederived: %s", updated.Slug)
	}
	if updated.SKU != product.SKU {
		t.Fatalf("sku must not change on update: %s vs %s", updated.SKU, product.SKU)
	}
}

func TestProductListGroupedMergesVariants(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if _, err := svc.Create(ProductInput{Name: "Grouped Saree", Color: "Green", RetailPrice: decimal.NewFromInt(1000)}); err != nil {
		t.Fatalf("create green failed: %v", err)
	}
	if _, err := svc.Create(ProductInput{Name: "Grouped Saree", Color: "Blue", RetailPrice: decimal.NewFromInt(1200)}); err != nil {
		t.Fatalf("create blue failed: %v", err)
	}
	if _, err := svc.Create(ProductInput{Name: "Lone Dupatta", Color: "", RetailPrice: decimal.NewFromInt(400)}); err != nil {
		t.Fatalf("create dupatta failed: %v", err)
	}

	groups, err := svc.ListGrouped(context.Background(), repository.ProductListFilter{Search: "Grouped Saree"})
	if err != nil {
		t.Fatalf("list grouped failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("want 1 group got %d", len(groups))
	}
	if len(groups[0].Variants) != 2 {
		t.Fatalf("want 2 variants got %d", len(groups[0].Variants))
	}
	// 展示价 = 1000 * 0.8
	if groups[0].DisplayPrice.String() != "800.00" {
		t.Fatalf("unexpected display price: %s", groups[0].DisplayPrice)
	}
}

func TestProductDetailExcludesSelfFromVariants(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	green, err := svc.Create(ProductInput{Name: "Detail Saree", Color: "Green", RetailPrice: decimal.NewFromInt(1000)})
	if err != nil {
		t.Fatalf("create green failed: %v", err)
	}
	blue, err := svc.Create(ProductInput{Name: "Detail Saree", Color: "Blue", RetailPrice: decimal.NewFromInt(1200)})
	if err != nil {
		t.Fatalf("create blue failed: %v", err)
	}

	detail, err := svc.GetDetailBySlug(context.Background(), green.Slug)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if len(detail.Variants) != 1 || detail.Variants[0].ID != blue.ID {
		t.Fatalf("variants must contain only the sibling: %+v", detail.Variants)
	}

	if _, err := svc.GetDetailBySlug(context.Background(), "no-such-slug"); err != ErrProductNotFound {
		t.Fatalf("want ErrProductNotFound got %v", err)
	}
}
