package public

import (
	"errors"

	"github.com/bunai-store/internal/http/response"
	"github.com/bunai-store/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrOrderEmptyItems, code: response.CodeBadRequest, key: "order.empty_cart"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "order.invalid_item"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, key: "product.not_found"},
	{target: service.ErrOutOfStock, code: response.CodeBadRequest, key: "product.out_of_stock"},
	{target: service.ErrCouponInvalid, code: response.CodeBadRequest, key: "coupon.invalid"},
	{target: service.ErrCouponNotFound, code: response.CodeBadRequest, key: "coupon.not_found"},
	{target: service.ErrCouponInactive, code: response.CodeBadRequest, key: "coupon.inactive"},
	{target: service.ErrCouponNotStarted, code: response.CodeBadRequest, key: "coupon.not_started"},
	{target: service.ErrCouponExpired, code: response.CodeBadRequest, key: "coupon.expired"},
	{target: service.ErrCouponUsageLimit, code: response.CodeBadRequest, key: "coupon.exhausted"},
	{target: service.ErrCouponMinAmount, code: response.CodeBadRequest, key: "coupon.min_amount"},
}

var couponValidateErrorRules = []mappedHandlerError{
	{target: service.ErrCouponInvalid, code: response.CodeBadRequest, key: "coupon.invalid"},
	{target: service.ErrCouponNotFound, code: response.CodeBadRequest, key: "coupon.not_found"},
	{target: service.ErrCouponInactive, code: response.CodeBadRequest, key: "coupon.inactive"},
	{target: service.ErrCouponNotStarted, code: response.CodeBadRequest, key: "coupon.not_started"},
	{target: service.ErrCouponExpired, code: response.CodeBadRequest, key: "coupon.expired"},
	{target: service.ErrCouponUsageLimit, code: response.CodeBadRequest, key: "coupon.exhausted"},
	{target: service.ErrCouponMinAmount, code: response.CodeBadRequest, key: "coupon.min_amount"},
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
}

func respondCouponValidateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, couponValidateErrorRules, response.CodeInternal, "error.internal")
}
