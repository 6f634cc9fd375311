package service

import (
	"strings"
	"time"

	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CouponService 优惠券服务
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// ApplyCoupon 校验优惠码并计算优惠金额。
// 优惠金额不超过 max_discount（0 表示不设上限），也不超过小计本身。
func (s *CouponService) ApplyCoupon(subtotal models.Money, code string) (models.Money, *models.Coupon, error) {
	coupon, err := s.lookup(code)
	if err != nil {
		return models.Money{}, nil, err
	}

	if subtotal.Decimal.Cmp(coupon.MinAmount.Decimal) < 0 {
		return models.Money{}, coupon, ErrCouponMinAmount
	}

	discount, err := s.calculateDiscount(coupon, subtotal)
	if err != nil {
		return models.Money{}, coupon, err
	}

	if coupon.MaxDiscount.Decimal.GreaterThan(decimal.Zero) && discount.Decimal.GreaterThan(coupon.MaxDiscount.Decimal) {
		discount = models.NewMoneyFromDecimal(coupon.MaxDiscount.Decimal)
	}
	if discount.Decimal.GreaterThan(subtotal.Decimal) {
		discount = models.NewMoneyFromDecimal(subtotal.Decimal)
	}

	return discount, coupon, nil
}

// ConsumeWithTx 在订单事务内占用一次使用额度。
// 并发下其他订单可能先把额度占满，此时更新不到任何行。
func (s *CouponService) ConsumeWithTx(tx *gorm.DB, couponID uint) error {
	affected, err := s.couponRepo.WithTx(tx).IncrementUsedCount(couponID, 1)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCouponUsageLimit
	}
	return nil
}

func (s *CouponService) lookup(code string) (*models.Coupon, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, ErrCouponInvalid
	}

	coupon, err := s.couponRepo.GetByCode(trimmed)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if !coupon.IsActive {
		return nil, ErrCouponInactive
	}

	now := time.Now()
	if coupon.StartsAt != nil && now.Before(*coupon.StartsAt) {
		return nil, ErrCouponNotStarted
	}
	if coupon.EndsAt != nil && now.After(*coupon.EndsAt) {
		return nil, ErrCouponExpired
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return nil, ErrCouponUsageLimit
	}

	return coupon, nil
}

func (s *CouponService) calculateDiscount(coupon *models.Coupon, subtotal models.Money) (models.Money, error) {
	switch strings.ToLower(strings.TrimSpace(coupon.Type)) {
	case constants.CouponTypeFixed:
		if coupon.Value.Decimal.LessThanOrEqual(decimal.Zero) {
			return models.Money{}, ErrCouponInvalid
		}
		return models.NewMoneyFromDecimal(coupon.Value.Decimal), nil
	case constants.CouponTypePercent:
		if coupon.Value.Decimal.LessThanOrEqual(decimal.Zero) {
			return models.Money{}, ErrCouponInvalid
		}
		percent := coupon.Value.Decimal.Div(decimal.NewFromInt(100))
		discount := subtotal.Decimal.Mul(percent)
		return models.NewMoneyFromDecimal(discount), nil
	default:
		return models.Money{}, ErrCouponInvalid
	}
}

// CouponInput 优惠券创建/更新入参
type CouponInput struct {
	Code        string
	Type        string
	Value       decimal.Decimal
	MinAmount   decimal.Decimal
	MaxDiscount decimal.Decimal
	UsageLimit  int
	StartsAt    *time.Time
	EndsAt      *time.Time
	IsActive    bool
}

func validateCouponInput(input CouponInput) error {
	if strings.TrimSpace(input.Code) == "" {
		return ErrCouponInvalid
	}
	switch strings.ToLower(strings.TrimSpace(input.Type)) {
	case constants.CouponTypeFixed, constants.CouponTypePercent:
	default:
		return ErrCouponInvalid
	}
	if input.Value.LessThanOrEqual(decimal.Zero) {
		return ErrCouponInvalid
	}
	if strings.ToLower(strings.TrimSpace(input.Type)) == constants.CouponTypePercent &&
		input.Value.GreaterThan(decimal.NewFromInt(100)) {
		return ErrCouponInvalid
	}
	return nil
}

// Create 创建优惠券
func (s *CouponService) Create(input CouponInput) (*models.Coupon, error) {
	if err := validateCouponInput(input); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(input.Code)
	exist, err := s.couponRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrCouponCodeExists
	}

	coupon := &models.Coupon{
		Code:        code,
		Type:        strings.ToLower(strings.TrimSpace(input.Type)),
		Value:       models.NewMoneyFromDecimal(input.Value),
		MinAmount:   models.NewMoneyFromDecimal(input.MinAmount),
		MaxDiscount: models.NewMoneyFromDecimal(input.MaxDiscount),
		UsageLimit:  input.UsageLimit,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		IsActive:    input.IsActive,
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update 更新优惠券
func (s *CouponService) Update(id uint, input CouponInput) (*models.Coupon, error) {
	if err := validateCouponInput(input); err != nil {
		return nil, err
	}

	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	code := strings.TrimSpace(input.Code)
	if code != coupon.Code {
		exist, err := s.couponRepo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if exist != nil && exist.ID != id {
			return nil, ErrCouponCodeExists
		}
	}

	coupon.Code = code
	coupon.Type = strings.ToLower(strings.TrimSpace(input.Type))
	coupon.Value = models.NewMoneyFromDecimal(input.Value)
	coupon.MinAmount = models.NewMoneyFromDecimal(input.MinAmount)
	coupon.MaxDiscount = models.NewMoneyFromDecimal(input.MaxDiscount)
	coupon.UsageLimit = input.UsageLimit
	coupon.StartsAt = input.StartsAt
	coupon.EndsAt = input.EndsAt
	coupon.IsActive = input.IsActive

	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Delete 删除优惠券
func (s *CouponService) Delete(id uint) error {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return ErrCouponNotFound
	}
	return s.couponRepo.Delete(id)
}

// List 优惠券列表
func (s *CouponService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter)
}

// GetByID 获取优惠券
func (s *CouponService) GetByID(id uint) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}
