package models

import "time"

// OrderItem 订单项表，冗余商品快照字段，商品删除后订单仍可回溯
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                      // 主键
	OrderID     uint      `gorm:"not null;index" json:"order_id"`                            // 订单ID
	ProductID   uint      `gorm:"not null;index" json:"product_id"`                          // 商品ID
	ProductName string    `gorm:"not null" json:"product_name"`                              // 商品名快照
	Color       string    `gorm:"type:varchar(100)" json:"color"`                            // 颜色快照
	SKU         string    `gorm:"column:sku;type:varchar(64)" json:"sku"`                    // SKU 快照
	UnitPrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`   // 单件展示价快照
	Quantity    int       `gorm:"not null" json:"quantity"`                                  // 数量
	Subtotal    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`     // 小计
	CreatedAt   time.Time `json:"created_at"`                                                // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
