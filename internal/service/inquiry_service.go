package service

import (
	"strings"

	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/logger"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/repository"
)

// InquiryService 商品咨询服务
type InquiryService struct {
	inquiryRepo repository.InquiryRepository
	productRepo repository.ProductRepository
}

// NewInquiryService 创建咨询服务
func NewInquiryService(inquiryRepo repository.InquiryRepository, productRepo repository.ProductRepository) *InquiryService {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		productRepo: productRepo,
	}
}

// InquiryInput 咨询提交入参
type InquiryInput struct {
	ProductID *uint
	Name      string
	Email     string
	Phone     string
	Message   string
}

// Submit 提交咨询
func (s *InquiryService) Submit(input InquiryInput) (*models.Inquiry, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, ErrInquiryMessageEmpty
	}
	if input.ProductID != nil && *input.ProductID > 0 {
		product, err := s.productRepo.GetByID(*input.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
	} else {
		input.ProductID = nil
	}

	inquiry := &models.Inquiry{
		ProductID: input.ProductID,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		Status:    constants.InquiryStatusNew,
	}
	if err := s.inquiryRepo.Create(inquiry); err != nil {
		return nil, err
	}

	logger.Infow("inquiry_submitted",
		"inquiry_id", inquiry.ID,
		"product_id", input.ProductID,
	)
	return inquiry, nil
}

// Close 关闭咨询
func (s *InquiryService) Close(id uint) (*models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, ErrInquiryNotFound
	}
	if inquiry.Status == constants.InquiryStatusClosed {
		return inquiry, nil
	}
	inquiry.Status = constants.InquiryStatusClosed
	if err := s.inquiryRepo.Update(inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

// List 咨询列表
func (s *InquiryService) List(filter repository.InquiryListFilter) ([]models.Inquiry, int64, error) {
	return s.inquiryRepo.List(filter)
}
