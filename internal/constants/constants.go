package constants

// 订单状态
const (
	OrderStatusPending   = "pending"   // 已创建，等待 WhatsApp 确认
	OrderStatusConfirmed = "confirmed" // 商家已确认
	OrderStatusShipped   = "shipped"   // 已发货
	OrderStatusCompleted = "completed" // 已完成
	OrderStatusCanceled  = "canceled"  // 已取消
)

// 优惠券类型
const (
	CouponTypeFixed   = "fixed"   // 固定金额
	CouponTypePercent = "percent" // 百分比
)

// 咨询状态
const (
	InquiryStatusNew    = "new"    // 新咨询
	InquiryStatusClosed = "closed" // 已处理
)

// 到货通知状态
const (
	StockNotificationStatusPending  = "pending"  // 等待补货
	StockNotificationStatusNotified = "notified" // 已通知
)

// 用户状态
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 折扣百分比取值范围
const (
	DiscountPercentMin = 0
	DiscountPercentMax = 100
)

// 队列名称
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型
const (
	TaskRestockNotify = "stock:restock_notify" // 补货后批量通知订阅客户
	TaskOrderFollowUp = "order:follow_up"      // 超时未确认订单跟进提醒
)

// 站点货币（卢比，整数展示）
const SiteCurrencyDefault = "INR"
