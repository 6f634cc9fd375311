package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// StringArray 字符串数组类型，用于存储商品图集等
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// Product 商品表。同名商品行视为同一逻辑商品的颜色变体，
// 分组为读时投影，不落库。
type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                         // 主键
	Name            string         `gorm:"not null;index" json:"name"`                                   // 商品名（变体共享）
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`                             // 唯一标识
	SKU             string         `gorm:"column:sku;type:varchar(64);uniqueIndex;not null" json:"sku"`  // 库存编码
	Category        string         `gorm:"type:varchar(100);index" json:"category"`                      // 分类（saree/dupatta/...）
	Color           string         `gorm:"type:varchar(100)" json:"color"`                               // 颜色
	FabricType      string         `gorm:"type:varchar(100)" json:"fabric_type"`                         // 面料
	Size            string         `gorm:"type:varchar(100)" json:"size"`                                // 尺寸
	Description     string         `gorm:"type:text" json:"description"`                                 // 描述
	ImageURL        string         `gorm:"type:varchar(500)" json:"image_url"`                           // 主图
	Images          StringArray    `gorm:"type:json" json:"images"`                                      // 图集
	WholesalePrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"wholesale_price"` // 批发价
	RetailPrice     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"retail_price"`    // 零售基准价
	DiscountPercent int            `gorm:"not null;default:20" json:"discount_percent"`                  // 折扣百分比（0-100）
	IsNew           bool           `gorm:"default:false;index" json:"is_new"`                            // 新品标记
	IsBestSeller    bool           `gorm:"default:false;index" json:"is_best_seller"`                    // 热销标记
	StockQuantity   int            `gorm:"not null;default:0" json:"stock_quantity"`                     // 库存数量（非负）
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                                   // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                               // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
