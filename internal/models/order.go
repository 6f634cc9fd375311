package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表。结算通过 WhatsApp 完成，订单仅作为对话的落库快照。
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                         // 主键
	OrderNo        string         `gorm:"uniqueIndex;not null" json:"order_no"`                         // 订单编号
	UserID         uint           `gorm:"index;not null;default:0" json:"user_id,omitempty"`            // 用户ID（游客订单为 0）
	CustomerName   string         `gorm:"type:varchar(200)" json:"customer_name"`                       // 客户姓名
	CustomerPhone  string         `gorm:"type:varchar(32);index" json:"customer_phone"`                 // 客户电话
	Status         string         `gorm:"index;not null" json:"status"`                                 // 订单状态
	Currency       string         `gorm:"not null" json:"currency"`                                     // 币种
	OriginalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"original_amount"` // 折前金额（展示价合计）
	DiscountAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"` // 优惠券优惠金额
	TotalAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`    // 应付金额
	CouponID       *uint          `gorm:"index" json:"coupon_id,omitempty"`                             // 优惠券ID
	CouponCode     string         `gorm:"type:varchar(64)" json:"coupon_code,omitempty"`                // 优惠码快照
	WhatsAppLink   string         `gorm:"type:varchar(2000)" json:"whatsapp_link"`                      // 结算跳转链接
	ClientIP       string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`                  // 下单客户端IP
	ConfirmedAt    *time.Time     `gorm:"index" json:"confirmed_at"`                                    // 商家确认时间
	ShippedAt      *time.Time     `json:"shipped_at"`                                                   // 发货时间
	CompletedAt    *time.Time     `json:"completed_at"`                                                 // 完成时间
	CanceledAt     *time.Time     `json:"canceled_at"`                                                  // 取消时间
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt      time.Time      `json:"updated_at"`                                                   // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                               // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
