package repository

import (
	"testing"

	"github.com/bunai-store/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, name, color, slug, sku, category string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:            name,
		Color:           color,
		Slug:            slug,
		SKU:             sku,
		Category:        category,
		FabricType:      "silk",
		RetailPrice:     models.NewMoneyFromDecimal(decimal.NewFromInt(12500)),
		DiscountPercent: 20,
		StockQuantity:   stock,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListFilters(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	createTestProduct(t, repo, "Filter Saree", "Green", "filter-saree-green", "FS-GREEN-AAA", "sarees", 5)
	createTestProduct(t, repo, "Filter Saree", "Blue", "filter-saree-blue", "FS-BLUE-AAA", "sarees", 0)
	createTestProduct(t, repo, "Filter Dupatta", "Green", "filter-dupatta-green", "FD-GREEN-AAA", "dupattas", 3)

	products, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, Category: "sarees"})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("category filter want 2 got total=%d len=%d", total, len(products))
	}

	green := "Green"
	products, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, Color: green})
	if err != nil {
		t.Fatalf("list by color failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("color filter want 2 got %d", total)
	}

	inStock := true
	products, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, Category: "sarees", InStock: &inStock})
	if err != nil {
		t.Fatalf("list in stock failed: %v", err)
	}
	if total != 1 || products[0].Slug != "filter-saree-green" {
		t.Fatalf("in-stock filter want filter-saree-green got total=%d", total)
	}

	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "Dupatta"})
	if err != nil {
		t.Fatalf("list by search failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("search filter want 1 got %d", total)
	}
}

func TestProductListByName(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	first := createTestProduct(t, repo, "Variant Saree", "Red", "variant-saree-red", "VS-RED-AAA", "sarees", 1)
	second := createTestProduct(t, repo, "Variant Saree", "Blue", "variant-saree-blue", "VS-BLUE-AAA", "sarees", 1)
	createTestProduct(t, repo, "Other Saree", "Red", "other-saree-red", "OS-RED-AAA", "sarees", 1)

	rows, err := repo.ListByName("Variant Saree")
	if err != nil {
		t.Fatalf("list by name failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows got %d", len(rows))
	}
	if rows[0].ID != first.ID || rows[1].ID != second.ID {
		t.Fatalf("rows must be ordered by id: %d, %d", rows[0].ID, rows[1].ID)
	}
}

func TestProductCountBySlugAndSKU(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product := createTestProduct(t, repo, "Count Saree", "Green", "count-saree-green", "CS-GREEN-AAA", "sarees", 1)

	count, err := repo.CountBySlug("count-saree-green", nil)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("slug count want 1 got %d", count)
	}

	count, err = repo.CountBySlug("count-saree-green", &product.ID)
	if err != nil {
		t.Fatalf("count by slug with exclude failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("slug count with exclude want 0 got %d", count)
	}

	count, err = repo.CountBySKU("CS-GREEN-AAA", nil)
	if err != nil {
		t.Fatalf("count by sku failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("sku count want 1 got %d", count)
	}
}

func TestProductCountIncludesSoftDeleted(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product := createTestProduct(t, repo, "Retired Saree", "Teal", "retired-saree-teal", "RS-TEAL-AAA", "sarees", 1)
	if err := repo.Delete(product.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	// 软删除行仍占用唯一索引，计数必须包含它们
	count, err := repo.CountBySlug("retired-saree-teal", nil)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("slug count want 1 got %d", count)
	}

	count, err = repo.CountBySKU("RS-TEAL-AAA", nil)
	if err != nil {
		t.Fatalf("count by sku failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("sku count want 1 got %d", count)
	}
}

func TestAdjustStockRejectsOverdraw(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	product := createTestProduct(t, repo, "Stock Saree", "Green", "stock-saree-green", "SS-GREEN-AAA", "sarees", 2)

	affected, err := repo.AdjustStock(product.ID, -3)
	if err != nil {
		t.Fatalf("adjust stock failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("overdraw affected want 0 got %d", affected)
	}

	affected, err = repo.AdjustStock(product.ID, -2)
	if err != nil {
		t.Fatalf("adjust stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("exact deduct affected want 1 got %d", affected)
	}

	affected, err = repo.AdjustStock(product.ID, 5)
	if err != nil {
		t.Fatalf("restock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("restock affected want 1 got %d", affected)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.StockQuantity != 5 {
		t.Fatalf("stock want 5 got %d", got.StockQuantity)
	}
}

func TestListCategories(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	createTestProduct(t, repo, "Cat Saree", "Green", "cat-saree-green", "CAT-GREEN-AAA", "zz-sarees", 1)
	createTestProduct(t, repo, "Cat Dupatta", "Green", "cat-dupatta-green", "CATD-GREEN-AAA", "aa-dupattas", 1)

	categories, err := repo.ListCategories()
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		seen[c] = true
	}
	if !seen["zz-sarees"] || !seen["aa-dupattas"] {
		t.Fatalf("categories missing: %v", categories)
	}
}
