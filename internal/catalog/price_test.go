package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDisplayPrice(t *testing.T) {
	cases := []struct {
		retail   int64
		percent  int
		expected int64
	}{
		{12500, 25, 9375},
		{100, 0, 100},
		{12500, 20, 10000},
		{999, 50, 500}, // 499.5 四舍五入
		{100, 100, 0},
	}
	for _, tc := range cases {
		got := DisplayPrice(decimal.NewFromInt(tc.retail), tc.percent)
		if !got.Equal(decimal.NewFromInt(tc.expected)) {
			t.Errorf("DisplayPrice(%d, %d) = %s, expected %d", tc.retail, tc.percent, got, tc.expected)
		}
	}
}

func TestDisplayPriceZeroPercentExact(t *testing.T) {
	retail := decimal.RequireFromString("1234.56")
	if got := DisplayPrice(retail, 0); !got.Equal(retail) {
		t.Fatalf("percent 0 must return retail exactly, got %s", got)
	}
}

func TestValidDiscountPercent(t *testing.T) {
	for _, valid := range []int{0, 1, 20, 100} {
		if !ValidDiscountPercent(valid) {
			t.Errorf("expected %d to be valid", valid)
		}
	}
	for _, invalid := range []int{-1, 101, 500} {
		if ValidDiscountPercent(invalid) {
			t.Errorf("expected %d to be invalid", invalid)
		}
	}
}
