package catalog

import (
	"testing"

	"github.com/bunai-store/internal/models"
)

func sampleRows() []models.Product {
	return []models.Product{
		{ID: 1, Name: "A", Color: "Red", Slug: "a-red", RetailPrice: models.NewMoneyFromInt(1000), DiscountPercent: 20},
		{ID: 2, Name: "A", Color: "Blue", Slug: "a-blue", RetailPrice: models.NewMoneyFromInt(1200), DiscountPercent: 0},
		{ID: 3, Name: "B", Color: "Green", Slug: "b-green", RetailPrice: models.NewMoneyFromInt(500), DiscountPercent: 10},
	}
}

func TestGroupByName(t *testing.T) {
	groups := GroupByName(sampleRows())

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "A" || groups[1].Name != "B" {
		t.Fatalf("unexpected group order: %s, %s", groups[0].Name, groups[1].Name)
	}
	if groups[0].ID != 1 {
		t.Fatalf("representative of group A should be row 1, got %d", groups[0].ID)
	}
	if len(groups[0].Variants) != 2 {
		t.Fatalf("group A should have 2 variants, got %d", len(groups[0].Variants))
	}
	if groups[0].Variants[0].Color != "Red" || groups[0].Variants[1].Color != "Blue" {
		t.Fatalf("variants must keep encounter order: %+v", groups[0].Variants)
	}
	if len(groups[1].Variants) != 1 || groups[1].Variants[0].Color != "Green" {
		t.Fatalf("unexpected group B variants: %+v", groups[1].Variants)
	}
	// 展示价按折扣计算：1000 * 0.8 = 800
	if groups[0].DisplayPrice.String() != "800.00" {
		t.Fatalf("unexpected display price: %s", groups[0].DisplayPrice)
	}
}

func TestGroupByNameIdempotent(t *testing.T) {
	rows := sampleRows()
	first := GroupByName(rows)
	second := GroupByName(rows)

	if len(first) != len(second) {
		t.Fatalf("group counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || len(first[i].Variants) != len(second[i].Variants) {
			t.Fatalf("groups differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
	// 入参不可被修改
	if rows[0].Name != "A" || rows[0].ID != 1 {
		t.Fatalf("input rows mutated: %+v", rows[0])
	}
}

func TestSiblingVariantsExcludesSelf(t *testing.T) {
	variants := SiblingVariants(sampleRows()[:2], 1)
	if len(variants) != 1 {
		t.Fatalf("expected 1 sibling, got %d", len(variants))
	}
	if variants[0].ID != 2 || variants[0].Slug != "a-blue" {
		t.Fatalf("unexpected sibling: %+v", variants[0])
	}
}
