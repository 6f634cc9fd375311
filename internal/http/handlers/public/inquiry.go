package public

import (
	"errors"

	"github.com/bunai-store/internal/http/response"
	"github.com/bunai-store/internal/i18n"
	"github.com/bunai-store/internal/service"

	"github.com/gin-gonic/gin"
)

// InquiryRequest 商品咨询请求
type InquiryRequest struct {
	ProductID *uint  `json:"product_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message" binding:"required"`
}

// SubmitInquiry 提交商品咨询
func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	inquiry, err := h.InquiryService.Submit(service.InquiryInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInquiryMessageEmpty):
			respondError(c, response.CodeBadRequest, "inquiry.message_required", nil)
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeBadRequest, "product.not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}

	locale := i18n.ResolveLocale(c.GetHeader("Accept-Language"))
	response.SuccessWithMsg(c, i18n.T(locale, "inquiry.received"), inquiry)
}
