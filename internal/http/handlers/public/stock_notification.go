package public

import (
	"errors"

	"github.com/bunai-store/internal/http/response"
	"github.com/bunai-store/internal/i18n"
	"github.com/bunai-store/internal/service"

	"github.com/gin-gonic/gin"
)

// StockNotifyRequest 到货通知登记请求
type StockNotifyRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone" binding:"required"`
}

// SubscribeStockNotification 登记缺货商品的到货通知。
func (h *Handler) SubscribeStockNotification(c *gin.Context) {
	var req StockNotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input := service.SubscribeInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if uid := optionalUserID(c); uid > 0 {
		input.UserID = &uid
	}

	subscription, err := h.StockNotificationService.Subscribe(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStockNotifyPhoneEmpty):
			respondError(c, response.CodeBadRequest, "stock_notify.phone_required", nil)
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product.not_found", nil)
		case errors.Is(err, service.ErrProductInStock):
			respondError(c, response.CodeBadRequest, "product.in_stock", nil)
		case errors.Is(err, service.ErrStockNotifyExists):
			respondError(c, response.CodeConflict, "stock_notify.duplicate", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}

	locale := i18n.ResolveLocale(c.GetHeader("Accept-Language"))
	response.SuccessWithMsg(c, i18n.T(locale, "stock_notify.subscribed"), subscription)
}
