package service

import (
	"strings"

	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/logger"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/repository"
)

// StockNotificationService 到货通知服务
type StockNotificationService struct {
	notifyRepo  repository.StockNotificationRepository
	productRepo repository.ProductRepository
}

// NewStockNotificationService 创建到货通知服务
func NewStockNotificationService(notifyRepo repository.StockNotificationRepository, productRepo repository.ProductRepository) *StockNotificationService {
	return &StockNotificationService{
		notifyRepo:  notifyRepo,
		productRepo: productRepo,
	}
}

// SubscribeInput 到货通知登记入参
type SubscribeInput struct {
	ProductID uint
	UserID    *uint
	Name      string
	Email     string
	Phone     string
}

// Subscribe 登记到货通知。仅允许对缺货商品登记，同商品同手机号去重。
func (s *StockNotificationService) Subscribe(input SubscribeInput) (*models.StockNotification, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, ErrStockNotifyPhoneEmpty
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.StockQuantity > 0 {
		return nil, ErrProductInStock
	}

	exist, err := s.notifyRepo.GetPending(input.ProductID, phone)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrStockNotifyExists
	}

	notification := &models.StockNotification{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     phone,
		Status:    constants.StockNotificationStatusPending,
	}
	if err := s.notifyRepo.Create(notification); err != nil {
		return nil, err
	}

	logger.Infow("stock_notification_subscribed",
		"product_id", input.ProductID,
		"notification_id", notification.ID,
	)
	return notification, nil
}

// NotifyProduct 将商品的待通知登记全部标记为已通知，返回本次通知的登记。
// 实际触达（WhatsApp/短信）由运营人员线下完成，这里只负责状态流转。
func (s *StockNotificationService) NotifyProduct(productID uint) ([]models.StockNotification, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	pending, err := s.notifyRepo.ListPendingByProduct(productID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return []models.StockNotification{}, nil
	}

	ids := make([]uint, 0, len(pending))
	for _, n := range pending {
		ids = append(ids, n.ID)
	}
	if err := s.notifyRepo.MarkNotified(ids); err != nil {
		return nil, err
	}

	logger.Infow("stock_notifications_marked",
		"product_id", productID,
		"count", len(ids),
	)
	return pending, nil
}

// List 登记列表
func (s *StockNotificationService) List(filter repository.StockNotificationListFilter) ([]models.StockNotification, int64, error) {
	return s.notifyRepo.List(filter)
}
