package service

import "errors"

// 业务错误定义，handler 层通过 errors.Is 映射为业务状态码。
var (
	ErrNotFound           = errors.New("记录不存在")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrInvalidPassword    = errors.New("密码错误")
	ErrWeakPassword       = errors.New("密码强度不足")
	ErrEmailExists        = errors.New("邮箱已注册")
	ErrUserDisabled       = errors.New("账号已禁用")

	ErrProductNotFound  = errors.New("商品不存在")
	ErrSlugExists       = errors.New("商品 slug 已存在")
	ErrSKUExists        = errors.New("商品 SKU 已存在")
	ErrInvalidDiscount  = errors.New("折扣百分比超出范围")
	ErrInvalidPrice     = errors.New("价格不合法")
	ErrInvalidQuantity  = errors.New("数量不合法")
	ErrProductNameEmpty = errors.New("商品名称不能为空")

	ErrCouponNotFound   = errors.New("优惠券不存在")
	ErrCouponInvalid    = errors.New("优惠券不可用")
	ErrCouponInactive   = errors.New("优惠券未启用")
	ErrCouponNotStarted = errors.New("优惠券未生效")
	ErrCouponExpired    = errors.New("优惠券已过期")
	ErrCouponUsageLimit = errors.New("优惠券使用次数已达上限")
	ErrCouponMinAmount  = errors.New("未达到优惠券最低消费金额")
	ErrCouponCodeExists = errors.New("优惠码已存在")

	ErrOrderNotFound     = errors.New("订单不存在")
	ErrOrderEmptyItems   = errors.New("订单不能没有商品")
	ErrOrderStatusChange = errors.New("订单状态不允许该变更")
	ErrOutOfStock        = errors.New("商品库存不足")

	ErrInquiryNotFound     = errors.New("咨询记录不存在")
	ErrInquiryMessageEmpty = errors.New("咨询内容不能为空")

	ErrStockNotifyExists     = errors.New("已登记该商品的到货通知")
	ErrStockNotifyPhoneEmpty = errors.New("到货通知需要手机号")
	ErrStockNotifyNotFound   = errors.New("到货通知登记不存在")
	ErrProductInStock        = errors.New("商品有货，无需登记到货通知")
)
