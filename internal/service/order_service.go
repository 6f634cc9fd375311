package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/bunai-store/internal/catalog"
	"github.com/bunai-store/internal/config"
	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/logger"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/queue"
	"github.com/bunai-store/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 未确认订单的跟进提醒延迟
const orderFollowUpDelay = 24 * time.Hour

// 订单状态流转表
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCanceled:  true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusShipped:  true,
		constants.OrderStatusCanceled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusCompleted: true,
	},
}

func isTransitionAllowed(current, target string) bool {
	if current == target {
		return true
	}
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

// OrderService 订单服务
type OrderService struct {
	cfg           *config.Config
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	couponService *CouponService
	queueClient   *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(cfg *config.Config, orderRepo repository.OrderRepository, productRepo repository.ProductRepository, couponService *CouponService, queueClient *queue.Client) *OrderService {
	return &OrderService{
		cfg:           cfg,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		couponService: couponService,
		queueClient:   queueClient,
	}
}

// CheckoutItem 下单项
type CheckoutItem struct {
	ProductID uint
	Quantity  int
}

// CheckoutInput 下单入参
type CheckoutInput struct {
	UserID       uint // 0 表示游客
	CustomerName string
	Phone        string
	CouponCode   string
	Items        []CheckoutItem
	ClientIP     string
}

// Checkout 创建订单并生成 WhatsApp 结算链接。
// 库存在事务内扣减，优惠券额度在事务内占用。
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	items, err := mergeCheckoutItems(input.Items)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderEmptyItems
	}

	// 校验商品并按展示价生成快照
	orderItems := make([]models.OrderItem, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if product.StockQuantity < item.Quantity {
			return nil, ErrOutOfStock
		}

		unitPrice := catalog.DisplayPrice(product.RetailPrice.Decimal, product.DiscountPercent)
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)

		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Color:       product.Color,
			SKU:         product.SKU,
			UnitPrice:   models.NewMoneyFromDecimal(unitPrice),
			Quantity:    item.Quantity,
			Subtotal:    models.NewMoneyFromDecimal(lineTotal),
		})
	}

	originalAmount := models.NewMoneyFromDecimal(subtotal)
	discountAmount := models.Money{Decimal: decimal.Zero}
	var coupon *models.Coupon
	if strings.TrimSpace(input.CouponCode) != "" {
		discountAmount, coupon, err = s.couponService.ApplyCoupon(originalAmount, input.CouponCode)
		if err != nil {
			return nil, err
		}
	}
	totalAmount := models.NewMoneyFromDecimal(subtotal.Sub(discountAmount.Decimal))

	currency := strings.TrimSpace(s.cfg.Store.Currency)
	if currency == "" {
		currency = constants.SiteCurrencyDefault
	}

	order := &models.Order{
		OrderNo:        generateOrderNo(),
		UserID:         input.UserID,
		CustomerName:   strings.TrimSpace(input.CustomerName),
		CustomerPhone:  strings.TrimSpace(input.Phone),
		Status:         constants.OrderStatusPending,
		Currency:       currency,
		OriginalAmount: originalAmount,
		DiscountAmount: discountAmount,
		TotalAmount:    totalAmount,
		ClientIP:       input.ClientIP,
		Items:          orderItems,
	}
	if coupon != nil {
		order.CouponID = &coupon.ID
		order.CouponCode = coupon.Code
	}
	order.WhatsAppLink = s.buildWhatsAppLink(order)

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		txProducts := s.productRepo.WithTx(tx)
		for _, item := range order.Items {
			affected, err := txProducts.AdjustStock(item.ProductID, -item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrOutOfStock
			}
		}
		if coupon != nil {
			if err := s.couponService.ConsumeWithTx(tx, coupon.ID); err != nil {
				return err
			}
		}
		return s.orderRepo.WithTx(tx).Create(order)
	})
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueOrderFollowUp(queue.OrderFollowUpPayload{OrderID: order.ID}, orderFollowUpDelay); err != nil {
		logger.Warnw("order_follow_up_enqueue_failed",
			"order_id", order.ID,
			"error", err,
		)
	}

	return order, nil
}

// buildWhatsAppLink 生成 wa.me 结算链接，消息正文包含订单明细
func (s *OrderService) buildWhatsAppLink(order *models.Order) string {
	phone := strings.TrimPrefix(strings.TrimSpace(s.cfg.WhatsApp.PhoneNumber), "+")
	if phone == "" {
		return ""
	}

	var b strings.Builder
	header := strings.TrimSpace(s.cfg.WhatsApp.MessageHeader)
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Order %s\n", order.OrderNo))
	for _, item := range order.Items {
		label := item.ProductName
		if item.Color != "" {
			label = fmt.Sprintf("%s (%s)", item.ProductName, item.Color)
		}
		b.WriteString(fmt.Sprintf("%dx %s [%s] - %s %s\n",
			item.Quantity, label, item.SKU, order.Currency, item.UnitPrice.String()))
	}
	if order.DiscountAmount.Decimal.GreaterThan(decimal.Zero) {
		b.WriteString(fmt.Sprintf("Coupon %s: -%s %s\n",
			order.CouponCode, order.Currency, order.DiscountAmount.String()))
	}
	b.WriteString(fmt.Sprintf("Total: %s %s", order.Currency, order.TotalAmount.String()))

	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(b.String()))
}

// UpdateStatus 订单状态流转。取消时回补库存。
func (s *OrderService) UpdateStatus(orderID uint, target string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	target = strings.ToLower(strings.TrimSpace(target))
	if order.Status == target {
		return order, nil
	}
	if !isTransitionAllowed(order.Status, target) {
		return nil, ErrOrderStatusChange
	}

	now := time.Now()
	order.Status = target
	switch target {
	case constants.OrderStatusConfirmed:
		order.ConfirmedAt = &now
	case constants.OrderStatusShipped:
		order.ShippedAt = &now
	case constants.OrderStatusCompleted:
		order.CompletedAt = &now
	case constants.OrderStatusCanceled:
		order.CanceledAt = &now
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if target == constants.OrderStatusCanceled {
			txProducts := s.productRepo.WithTx(tx)
			for _, item := range order.Items {
				if _, err := txProducts.AdjustStock(item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return s.orderRepo.WithTx(tx).Update(order)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_status_changed",
		"order_no", order.OrderNo,
		"status", target,
	)
	return order, nil
}

// GetByID 订单详情
func (s *OrderService) GetByID(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetUserOrder 客户查看自己的订单
func (s *OrderService) GetUserOrder(orderID, userID uint) (*models.Order, error) {
	order, err := s.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID == 0 || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListUserOrders 客户订单列表
func (s *OrderService) ListUserOrders(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// List 后台订单列表
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("BN%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}

// mergeCheckoutItems 合并重复商品的下单项
func mergeCheckoutItems(items []CheckoutItem) ([]CheckoutItem, error) {
	if len(items) == 0 {
		return nil, nil
	}
	merged := make([]CheckoutItem, 0, len(items))
	index := make(map[uint]int, len(items))
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if at, ok := index[item.ProductID]; ok {
			merged[at].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged, nil
}
