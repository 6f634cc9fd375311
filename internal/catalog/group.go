package catalog

import (
	"github.com/bunai-store/internal/models"
)

// Variant 颜色变体条目
type Variant struct {
	ID       uint         `json:"id"`
	Color    string       `json:"color"`
	Slug     string       `json:"slug"`
	Price    models.Money `json:"price"`
	ImageURL string       `json:"image_url"`
}

// Group 逻辑商品：同名商品行的读时聚合。
// 首次出现的行作为代表行携带全部标量字段，所有行（含代表行）
// 按出现顺序进入 Variants。
type Group struct {
	models.Product
	DisplayPrice models.Money `json:"display_price"`
	Variants     []Variant    `json:"variants"`
}

// GroupByName 按商品名单趟聚合，输出顺序为商品名首次出现顺序。
// 不修改入参。
func GroupByName(products []models.Product) []Group {
	groups := make([]Group, 0, len(products))
	index := make(map[string]int, len(products))

	for i := range products {
		p := products[i]
		at, seen := index[p.Name]
		if !seen {
			at = len(groups)
			index[p.Name] = at
			groups = append(groups, Group{
				Product:      p,
				DisplayPrice: models.NewMoneyFromDecimal(DisplayPrice(p.RetailPrice.Decimal, p.DiscountPercent)),
				Variants:     make([]Variant, 0, 1),
			})
		}
		groups[at].Variants = append(groups[at].Variants, variantOf(p))
	}
	return groups
}

// SiblingVariants 商品详情页的变体列表：同名行中排除自身。
func SiblingVariants(products []models.Product, selfID uint) []Variant {
	variants := make([]Variant, 0, len(products))
	for i := range products {
		if products[i].ID == selfID {
			continue
		}
		variants = append(variants, variantOf(products[i]))
	}
	return variants
}

func variantOf(p models.Product) Variant {
	return Variant{
		ID:       p.ID,
		Color:    p.Color,
		Slug:     p.Slug,
		Price:    models.NewMoneyFromDecimal(DisplayPrice(p.RetailPrice.Decimal, p.DiscountPercent)),
		ImageURL: p.ImageURL,
	}
}
