package repository

import (
	"errors"

	"github.com/bunai-store/internal/models"

	"gorm.io/gorm"
)

// InquiryRepository 商品咨询数据访问接口
type InquiryRepository interface {
	GetByID(id uint) (*models.Inquiry, error)
	Create(inquiry *models.Inquiry) error
	Update(inquiry *models.Inquiry) error
	List(filter InquiryListFilter) ([]models.Inquiry, int64, error)
}

// GormInquiryRepository GORM 实现
type GormInquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository 创建咨询仓库
func NewInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

// GetByID 根据 ID 获取咨询
func (r *GormInquiryRepository) GetByID(id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := r.db.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

// Create 创建咨询
func (r *GormInquiryRepository) Create(inquiry *models.Inquiry) error {
	return r.db.Create(inquiry).Error
}

// Update 更新咨询
func (r *GormInquiryRepository) Update(inquiry *models.Inquiry) error {
	return r.db.Save(inquiry).Error
}

// List 咨询列表
func (r *GormInquiryRepository) List(filter InquiryListFilter) ([]models.Inquiry, int64, error) {
	query := r.db.Model(&models.Inquiry{})

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

	var inquiries []models.Inquiry
	if err := query.Order("id DESC").Find(&inquiries).Error; err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}
