package models

import (
	"time"

	"gorm.io/gorm"
)

// Inquiry 客户咨询表
type Inquiry struct {
	ID        uint           `gorm:"primarykey" json:"id"`                         // 主键
	ProductID *uint          `gorm:"index" json:"product_id,omitempty"`            // 关联商品（可为空）
	Name      string         `gorm:"not null" json:"name"`                         // 姓名
	Email     string         `gorm:"type:varchar(200)" json:"email"`               // 邮箱
	Phone     string         `gorm:"type:varchar(32)" json:"phone"`                // 电话
	Message   string         `gorm:"type:text;not null" json:"message"`            // 留言内容
	Status    string         `gorm:"index;not null;default:'new'" json:"status"`   // 状态（new/closed）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                      // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                   // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除时间
}

// TableName 指定表名
func (Inquiry) TableName() string {
	return "inquiries"
}
