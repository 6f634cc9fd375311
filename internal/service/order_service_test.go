package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *ProductService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Coupon{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := testConfig()
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponService := NewCouponService(repository.NewCouponRepository(db))
	productService := NewProductService(cfg, productRepo, testQueueClient(t))
	orderService := NewOrderService(cfg, orderRepo, productRepo, couponService, testQueueClient(t))
	return orderService, productService, db
}

func TestCheckoutDeductsStockAndSnapshotsPrices(t *testing.T) {
	orders, products, db := setupOrderServiceTest(t)

	product, err := products.Create(ProductInput{
		Name:          "Checkout Saree",
		Color:         "Green",
		RetailPrice:   decimal.NewFromInt(12500),
		StockQuantity: 3,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	order, err := orders.Checkout(CheckoutInput{
		CustomerName: "Asha",
		Phone:        "+91 98765 43210",
		Items:        []CheckoutItem{{ProductID: product.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if !strings.HasPrefix(order.OrderNo, "BN") {
		t.Fatalf("unexpected order no: %s", order.OrderNo)
	}
	if len(order.Items) != 1 {
		t.Fatalf("want 1 item got %d", len(order.Items))
	}
	// 展示价 12500 * 0.8 = 10000，两件合计 20000
	if order.Items[0].UnitPrice.String() != "10000.00" {
		t.Fatalf("unit price want 10000.00 got %s", order.Items[0].UnitPrice)
	}
	if order.TotalAmount.String() != "20000.00" {
		t.Fatalf("total want 20000.00 got %s", order.TotalAmount)
	}
	if order.Items[0].SKU != product.SKU {
		t.Fatalf("sku snapshot mismatch: %s vs %s", order.Items[0].SKU, product.SKU)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.StockQuantity != 1 {
		t.Fatalf("stock want 1 got %d", got.StockQuantity)
	}
}

func TestCheckoutRejectsInsufficientStock(t *testing.T) {
	orders, products, _ := setupOrderServiceTest(t)

	product, err := products.Create(ProductInput{
		Name:          "Scarce Saree",
		Color:         "Blue",
		RetailPrice:   decimal.NewFromInt(1000),
		StockQuantity: 1,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if _, err := orders.Checkout(CheckoutInput{
		Items: []CheckoutItem{{ProductID: product.ID, Quantity: 2}},
	}); err != ErrOutOfStock {
		t.Fatalf("want ErrOutOfStock got %v", err)
	}

	if _, err := orders.Checkout(CheckoutInput{Items: nil}); err != ErrOrderEmptyItems {
		t.Fatalf("want ErrOrderEmptyItems got %v", err)
	}
}

func TestCheckoutAppliesCouponAndConsumesUsage(t *testing.T) {
	orders, products, db := setupOrderServiceTest(t)

	product, err := products.Create(ProductInput{
		Name:          "Coupon Saree",
		Color:         "Red",
		RetailPrice:   decimal.NewFromInt(2500),
		StockQuantity: 5,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	coupon := &models.Coupon{
		Code:       "ORDER200",
		Type:       constants.CouponTypeFixed,
		Value:      money(200),
		UsageLimit: 1,
		IsActive:   true,
	}
	if err := db.Create(coupon).Error; err != nil {
		t.Fatalf("seed coupon failed: %v", err)
	}

	order, err := orders.Checkout(CheckoutInput{
		CouponCode: "ORDER200",
		Items:      []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// 展示价 2000 - 优惠 200
	if order.DiscountAmount.String() != "200.00" {
		t.Fatalf("discount want 200.00 got %s", order.DiscountAmount)
	}
	if order.TotalAmount.String() != "1800.00" {
		t.Fatalf("total want 1800.00 got %s", order.TotalAmount)
	}
	if order.CouponCode != "ORDER200" || order.CouponID == nil {
		t.Fatalf("coupon snapshot missing: %+v", order)
	}

	var got models.Coupon
	if err := db.First(&got, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if got.UsedCount != 1 {
		t.Fatalf("used count want 1 got %d", got.UsedCount)
	}

	// 用量已达上限，第二单应被拒绝
	if _, err := orders.Checkout(CheckoutInput{
		CouponCode: "ORDER200",
		Items:      []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
	}); err != ErrCouponUsageLimit {
		t.Fatalf("want ErrCouponUsageLimit got %v", err)
	}
}

func TestCheckoutBuildsWhatsAppLink(t *testing.T) {
	orders, products, _ := setupOrderServiceTest(t)

	product, err := products.Create(ProductInput{
		Name:          "Link Saree",
		Color:         "Teal",
		RetailPrice:   decimal.NewFromInt(1250),
		StockQuantity: 2,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	order, err := orders.Checkout(CheckoutInput{
		Items: []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if !strings.HasPrefix(order.WhatsAppLink, "https://wa.me/919812345678?text=") {
		t.Fatalf("unexpected link prefix: %s", order.WhatsAppLink)
	}
	encoded := strings.TrimPrefix(order.WhatsAppLink, "https://wa.me/919812345678?text=")
	message, err := url.QueryUnescape(encoded)
	if err != nil {
		t.Fatalf("unescape message failed: %v", err)
	}
	if !strings.Contains(message, order.OrderNo) {
		t.Fatalf("message missing order no: %s", message)
	}
	if !strings.Contains(message, "1x Link Saree (Teal)") {
		t.Fatalf("message missing item line: %s", message)
	}
	if !strings.Contains(message, "Total: INR 1000.00") {
		t.Fatalf("message missing total: %s", message)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	orders, products, db := setupOrderServiceTest(t)

	product, err := products.Create(ProductInput{
		Name:          "Status Saree",
		Color:         "Grey",
		RetailPrice:   decimal.NewFromInt(500),
		StockQuantity: 4,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	order, err := orders.Checkout(CheckoutInput{
		Items: []CheckoutItem{{ProductID: product.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// pending 不能直接 shipped
	if _, err := orders.UpdateStatus(order.ID, constants.OrderStatusShipped); err != ErrOrderStatusChange {
		t.Fatalf("want ErrOrderStatusChange got %v", err)
	}

	confirmed, err := orders.UpdateStatus(order.ID, constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.ConfirmedAt == nil {
		t.Fatalf("confirmed_at not set")
	}

	shipped, err := orders.UpdateStatus(order.ID, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("ship failed: %v", err)
	}
	if shipped.ShippedAt == nil {
		t.Fatalf("shipped_at not set")
	}

	completed, err := orders.UpdateStatus(order.ID, constants.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if completed.CompletedAt == nil {
		t.Fatalf("completed_at not set")
	}

	// 已完成订单不可再取消
	if _, err := orders.UpdateStatus(order.ID, constants.OrderStatusCanceled); err != ErrOrderStatusChange {
		t.Fatalf("want ErrOrderStatusChange got %v", err)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.StockQuantity != 2 {
		t.Fatalf("stock want 2 got %d", got.StockQuantity)
	}
}

func TestOrderCancelRestoresStock(t *testing.T) {
	orders, products, db := setupOrderServiceTest(t)

	product, err := products.Create(ProductInput{
		Name:          "Cancel Saree",
		Color:         "Black",
		RetailPrice:   decimal.NewFromInt(800),
		StockQuantity: 3,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	order, err := orders.Checkout(CheckoutInput{
		Items: []CheckoutItem{{ProductID: product.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := orders.UpdateStatus(order.ID, constants.OrderStatusCanceled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.StockQuantity != 3 {
		t.Fatalf("stock want 3 after cancel got %d", got.StockQuantity)
	}
}

func TestGetUserOrderHidesOtherUsers(t *testing.T) {
	orders, products, _ := setupOrderServiceTest(t)

	product, err := products.Create(ProductInput{
		Name:          "Private Saree",
		Color:         "Ivory",
		RetailPrice:   decimal.NewFromInt(600),
		StockQuantity: 2,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	order, err := orders.Checkout(CheckoutInput{
		UserID: 7,
		Items:  []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := orders.GetUserOrder(order.ID, 7); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if _, err := orders.GetUserOrder(order.ID, 8); err != ErrOrderNotFound {
		t.Fatalf("want ErrOrderNotFound got %v", err)
	}
}
