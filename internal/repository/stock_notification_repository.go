package repository

import (
	"errors"
	"time"

	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/models"

	"gorm.io/gorm"
)

// StockNotificationRepository 到货通知登记数据访问接口
type StockNotificationRepository interface {
	GetByID(id uint) (*models.StockNotification, error)
	GetPending(productID uint, phone string) (*models.StockNotification, error)
	ListPendingByProduct(productID uint) ([]models.StockNotification, error)
	Create(notification *models.StockNotification) error
	List(filter StockNotificationListFilter) ([]models.StockNotification, int64, error)
	MarkNotified(ids []uint) error
	WithTx(tx *gorm.DB) StockNotificationRepository
}

// GormStockNotificationRepository GORM 实现
type GormStockNotificationRepository struct {
	db *gorm.DB
}

// NewStockNotificationRepository 创建到货通知仓库
func NewStockNotificationRepository(db *gorm.DB) *GormStockNotificationRepository {
	return &GormStockNotificationRepository{db: db}
}

// WithTx 绑定事务
func (r *GormStockNotificationRepository) WithTx(tx *gorm.DB) StockNotificationRepository {
	if tx == nil {
		return r
	}
	return &GormStockNotificationRepository{db: tx}
}

// GetByID 根据 ID 获取登记
func (r *GormStockNotificationRepository) GetByID(id uint) (*models.StockNotification, error) {
	var notification models.StockNotification
	if err := r.db.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

// GetPending 查询同商品同手机号的待通知登记（去重用）
func (r *GormStockNotificationRepository) GetPending(productID uint, phone string) (*models.StockNotification, error) {
	var notification models.StockNotification
	if err := r.db.Where("product_id = ? AND phone = ? AND status = ?",
		productID, phone, constants.StockNotificationStatusPending).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

// ListPendingByProduct 商品的全部待通知登记
func (r *GormStockNotificationRepository) ListPendingByProduct(productID uint) ([]models.StockNotification, error) {
	var notifications []models.StockNotification
	if err := r.db.Where("product_id = ? AND status = ?",
		productID, constants.StockNotificationStatusPending).
		Order("id ASC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// Create 创建登记
func (r *GormStockNotificationRepository) Create(notification *models.StockNotification) error {
	return r.db.Create(notification).Error
}

// List 登记列表
func (r *GormStockNotificationRepository) List(filter StockNotificationListFilter) ([]models.StockNotification, int64, error) {
	query := r.db.Model(&models.StockNotification{})

	if filter.ProductID > 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var notifications []models.StockNotification
	if err := query.Order("id DESC").Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// MarkNotified 批量标记已通知
func (r *GormStockNotificationRepository) MarkNotified(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	now := time.Now()
	return r.db.Model(&models.StockNotification{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":      constants.StockNotificationStatusNotified,
			"notified_at": now,
		}).Error
}
