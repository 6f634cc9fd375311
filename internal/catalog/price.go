package catalog

import (
	"github.com/bunai-store/internal/constants"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// DisplayPrice 计算展示价：retail * (1 - percent/100)，
// 四舍五入到整数货币单位（本业务不使用小数卢比）。
// percent 为 0 时严格返回零售价本身。
func DisplayPrice(retail decimal.Decimal, percent int) decimal.Decimal {
	if percent <= constants.DiscountPercentMin {
		return retail
	}
	if percent >= constants.DiscountPercentMax {
		return decimal.Zero
	}
	factor := decimal.NewFromInt(int64(constants.DiscountPercentMax - percent))
	return retail.Mul(factor).Div(oneHundred).Round(0)
}

// ValidDiscountPercent 校验折扣百分比是否在 [0, 100] 区间内
func ValidDiscountPercent(percent int) bool {
	return percent >= constants.DiscountPercentMin && percent <= constants.DiscountPercentMax
}
