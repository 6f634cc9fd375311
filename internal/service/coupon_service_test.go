package service

import (
	"testing"
	"time"

	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupCouponServiceTest(t *testing.T) (*CouponService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}); err != nil {
		t.Fatalf("migrate coupon failed: %v", err)
	}
	return NewCouponService(repository.NewCouponRepository(db)), db
}

func money(v int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(v))
}

func TestApplyCouponFixed(t *testing.T) {
	svc, _ := setupCouponServiceTest(t)

	_, err := svc.Create(CouponInput{
		Code:      "FLAT500",
		Type:      constants.CouponTypeFixed,
		Value:     decimal.NewFromInt(500),
		MinAmount: decimal.NewFromInt(2000),
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	discount, coupon, err := svc.ApplyCoupon(money(5000), "FLAT500")
	if err != nil {
		t.Fatalf("apply coupon failed: %v", err)
	}
	if coupon == nil || coupon.Code != "FLAT500" {
		t.Fatalf("unexpected coupon: %+v", coupon)
	}
	if discount.String() != "500.00" {
		t.Fatalf("discount want 500.00 got %s", discount)
	}

	if _, _, err := svc.ApplyCoupon(money(1000), "FLAT500"); err != ErrCouponMinAmount {
		t.Fatalf("want ErrCouponMinAmount got %v", err)
	}
}

func TestApplyCouponPercentWithCap(t *testing.T) {
	svc, _ := setupCouponServiceTest(t)

	_, err := svc.Create(CouponInput{
		Code:        "SAVE10",
		Type:        constants.CouponTypePercent,
		Value:       decimal.NewFromInt(10),
		MaxDiscount: decimal.NewFromInt(300),
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	// 10% of 2000 = 200，未触顶
	discount, _, err := svc.ApplyCoupon(money(2000), "SAVE10")
	if err != nil {
		t.Fatalf("apply coupon failed: %v", err)
	}
	if discount.String() != "200.00" {
		t.Fatalf("discount want 200.00 got %s", discount)
	}

	// 10% of 5000 = 500，被 max_discount=300 截断
	discount, _, err = svc.ApplyCoupon(money(5000), "SAVE10")
	if err != nil {
		t.Fatalf("apply capped coupon failed: %v", err)
	}
	if discount.String() != "300.00" {
		t.Fatalf("capped discount want 300.00 got %s", discount)
	}
}

func TestApplyCouponLifecycleGuards(t *testing.T) {
	svc, db := setupCouponServiceTest(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	if _, _, err := svc.ApplyCoupon(money(1000), "NOPE"); err != ErrCouponNotFound {
		t.Fatalf("want ErrCouponNotFound got %v", err)
	}

	inactive := &models.Coupon{Code: "INACTIVE", Type: constants.CouponTypeFixed, Value: money(100), IsActive: false}
	if err := db.Create(inactive).Error; err != nil {
		t.Fatalf("seed inactive failed: %v", err)
	}
	if _, _, err := svc.ApplyCoupon(money(1000), "INACTIVE"); err != ErrCouponInactive {
		t.Fatalf("want ErrCouponInactive got %v", err)
	}

	notStarted := &models.Coupon{Code: "SOON", Type: constants.CouponTypeFixed, Value: money(100), IsActive: true, StartsAt: &future}
	if err := db.Create(notStarted).Error; err != nil {
		t.Fatalf("seed not started failed: %v", err)
	}
	if _, _, err := svc.ApplyCoupon(money(1000), "SOON"); err != ErrCouponNotStarted {
		t.Fatalf("want ErrCouponNotStarted got %v", err)
	}

	expired := &models.Coupon{Code: "LATE", Type: constants.CouponTypeFixed, Value: money(100), IsActive: true, EndsAt: &past}
	if err := db.Create(expired).Error; err != nil {
		t.Fatalf("seed expired failed: %v", err)
	}
	if _, _, err := svc.ApplyCoupon(money(1000), "LATE"); err != ErrCouponExpired {
		t.Fatalf("want ErrCouponExpired got %v", err)
	}

	used := &models.Coupon{Code: "USEDUP", Type: constants.CouponTypeFixed, Value: money(100), IsActive: true, UsageLimit: 2, UsedCount: 2}
	if err := db.Create(used).Error; err != nil {
		t.Fatalf("seed used up failed: %v", err)
	}
	if _, _, err := svc.ApplyCoupon(money(1000), "USEDUP"); err != ErrCouponUsageLimit {
		t.Fatalf("want ErrCouponUsageLimit got %v", err)
	}
}

func TestCouponDiscountNeverExceedsSubtotal(t *testing.T) {
	svc, _ := setupCouponServiceTest(t)

	_, err := svc.Create(CouponInput{
		Code:     "BIGFLAT",
		Type:     constants.CouponTypeFixed,
		Value:    decimal.NewFromInt(9999),
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	discount, _, err := svc.ApplyCoupon(money(700), "BIGFLAT")
	if err != nil {
		t.Fatalf("apply coupon failed: %v", err)
	}
	if discount.String() != "700.00" {
		t.Fatalf("discount must clamp to subtotal, got %s", discount)
	}
}

func TestConsumeWithTxEnforcesUsageLimit(t *testing.T) {
	svc, db := setupCouponServiceTest(t)

	open := &models.Coupon{Code: "HEADROOM", Type: constants.CouponTypeFixed, Value: money(100), IsActive: true, UsageLimit: 2, UsedCount: 1}
	if err := db.Create(open).Error; err != nil {
		t.Fatalf("seed open coupon failed: %v", err)
	}
	if err := svc.ConsumeWithTx(db, open.ID); err != nil {
		t.Fatalf("consume with headroom failed: %v", err)
	}
	var got models.Coupon
	if err := db.First(&got, open.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if got.UsedCount != 2 {
		t.Fatalf("used count want 2 got %d", got.UsedCount)
	}

	// 额度已占满时更新不到任何行，必须报用量上限而不是静默通过
	if err := svc.ConsumeWithTx(db, open.ID); err != ErrCouponUsageLimit {
		t.Fatalf("want ErrCouponUsageLimit got %v", err)
	}

	unlimited := &models.Coupon{Code: "NOLIMIT", Type: constants.CouponTypeFixed, Value: money(100), IsActive: true, UsageLimit: 0, UsedCount: 7}
	if err := db.Create(unlimited).Error; err != nil {
		t.Fatalf("seed unlimited coupon failed: %v", err)
	}
	if err := svc.ConsumeWithTx(db, unlimited.ID); err != nil {
		t.Fatalf("consume unlimited failed: %v", err)
	}
}

func TestCouponCreateRejectsDuplicateCode(t *testing.T) {
	svc, _ := setupCouponServiceTest(t)

	input := CouponInput{
		Code:     "DUP",
		Type:     constants.CouponTypeFixed,
		Value:    decimal.NewFromInt(50),
		IsActive: true,
	}
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(input); err != ErrCouponCodeExists {
		t.Fatalf("want ErrCouponCodeExists got %v", err)
	}
}
