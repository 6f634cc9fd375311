package public

import (
	"github.com/bunai-store/internal/http/response"
	"github.com/bunai-store/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ValidateCouponRequest 优惠券校验请求
type ValidateCouponRequest struct {
	Code   string  `json:"code" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// ValidateCoupon 结算前校验优惠券并预览折扣金额。
// 不占用使用额度，真正的扣减发生在下单事务内。
func (h *Handler) ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	subtotal := models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Amount))
	discount, coupon, err := h.CouponService.ApplyCoupon(subtotal, req.Code)
	if err != nil {
		respondCouponValidateError(c, err)
		return
	}

	response.Success(c, gin.H{
		"code":     coupon.Code,
		"discount": discount,
		"payable":  models.NewMoneyFromDecimal(subtotal.Decimal.Sub(discount.Decimal)),
	})
}
