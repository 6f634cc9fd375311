package service

import (
	"testing"

	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupStockNotificationTest(t *testing.T) (*StockNotificationService, *ProductService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.StockNotification{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	svc := NewStockNotificationService(repository.NewStockNotificationRepository(db), productRepo)
	productService := NewProductService(testConfig(), productRepo, testQueueClient(t))
	return svc, productService, db
}

func TestSubscribeRequiresOutOfStock(t *testing.T) {
	svc, products, _ := setupStockNotificationTest(t)

	inStock, err := products.Create(ProductInput{
		Name:          "Available Saree",
		Color:         "Pink",
		RetailPrice:   decimal.NewFromInt(700),
		StockQuantity: 2,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if _, err := svc.Subscribe(SubscribeInput{ProductID: inStock.ID, Phone: "9800000001"}); err != ErrProductInStock {
		t.Fatalf("want ErrProductInStock got %v", err)
	}

	if _, err := svc.Subscribe(SubscribeInput{ProductID: 99999, Phone: "9800000001"}); err != ErrProductNotFound {
		t.Fatalf("want ErrProductNotFound got %v", err)
	}

	if _, err := svc.Subscribe(SubscribeInput{ProductID: inStock.ID, Phone: "  "}); err != ErrStockNotifyPhoneEmpty {
		t.Fatalf("want ErrStockNotifyPhoneEmpty got %v", err)
	}
}

func TestSubscribeDeduplicatesByProductAndPhone(t *testing.T) {
	svc, products, _ := setupStockNotificationTest(t)

	soldOut, err := products.Create(ProductInput{
		Name:          "Soldout Saree",
		Color:         "Mustard",
		RetailPrice:   decimal.NewFromInt(900),
		StockQuantity: 0,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	first, err := svc.Subscribe(SubscribeInput{ProductID: soldOut.ID, Phone: "9800000002", Name: "Ravi"})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if first.Status != constants.StockNotificationStatusPending {
		t.Fatalf("status want pending got %s", first.Status)
	}

	if _, err := svc.Subscribe(SubscribeInput{ProductID: soldOut.ID, Phone: "9800000002"}); err != ErrStockNotifyExists {
		t.Fatalf("want ErrStockNotifyExists got %v", err)
	}

	// 其他手机号可以继续登记
	if _, err := svc.Subscribe(SubscribeInput{ProductID: soldOut.ID, Phone: "9800000003"}); err != nil {
		t.Fatalf("second phone subscribe failed: %v", err)
	}
}

func TestNotifyProductMarksAllPending(t *testing.T) {
	svc, products, db := setupStockNotificationTest(t)

	soldOut, err := products.Create(ProductInput{
		Name:          "Notify Saree",
		Color:         "Olive",
		RetailPrice:   decimal.NewFromInt(900),
		StockQuantity: 0,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if _, err := svc.Subscribe(SubscribeInput{ProductID: soldOut.ID, Phone: "9800000010"}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if _, err := svc.Subscribe(SubscribeInput{ProductID: soldOut.ID, Phone: "9800000011"}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	notified, err := svc.NotifyProduct(soldOut.ID)
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if len(notified) != 2 {
		t.Fatalf("want 2 notified got %d", len(notified))
	}

	var rows []models.StockNotification
	if err := db.Where("product_id = ?", soldOut.ID).Find(&rows).Error; err != nil {
		t.Fatalf("reload rows failed: %v", err)
	}
	for _, row := range rows {
		if row.Status != constants.StockNotificationStatusNotified {
			t.Fatalf("row %d status want notified got %s", row.ID, row.Status)
		}
		if row.NotifiedAt == nil {
			t.Fatalf("row %d notified_at not set", row.ID)
		}
	}

	// 再次触发为空操作
	again, err := svc.NotifyProduct(soldOut.ID)
	if err != nil {
		t.Fatalf("second notify failed: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("want 0 got %d", len(again))
	}

	// 重新登记需要商品再次缺货，此时商品仍为 0 库存，允许登记
	if _, err := svc.Subscribe(SubscribeInput{ProductID: soldOut.ID, Phone: "9800000010"}); err != nil {
		t.Fatalf("re-subscribe after notify failed: %v", err)
	}
}
