package models

import (
	"time"

	"gorm.io/gorm"
)

// StockNotification 到货通知订阅表。
// 同商品同手机号的去重只针对 pending 状态，由服务层保证，
// 已通知的历史记录允许再次登记。
type StockNotification struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                                   // 主键
	ProductID  uint           `gorm:"not null;index:idx_stock_notify_product_phone" json:"product_id"`        // 商品ID
	UserID     *uint          `gorm:"index" json:"user_id,omitempty"`                                         // 用户ID（可为空）
	Name       string         `gorm:"not null" json:"name"`                                                   // 姓名
	Phone      string         `gorm:"type:varchar(32);not null;index:idx_stock_notify_product_phone" json:"phone"` // 电话
	Email      string         `gorm:"type:varchar(200)" json:"email"`                                             // 邮箱（可选）
	Status     string         `gorm:"index;not null;default:'pending'" json:"status"`                             // 状态（pending/notified）
	NotifiedAt *time.Time     `json:"notified_at"`                                                                // 通知时间
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                                    // 创建时间
	UpdatedAt  time.Time      `json:"updated_at"`                                                                 // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                                             // 软删除时间
}

// TableName 指定表名
func (StockNotification) TableName() string {
	return "stock_notifications"
}
