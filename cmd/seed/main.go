package main

import (
	"fmt"
	"time"

	"github.com/bunai-store/internal/catalog"
	"github.com/bunai-store/internal/config"
	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/logger"
	"github.com/bunai-store/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加商品：同名不同色的行即为颜色变体
	products := []models.Product{
		{
			Name:            "Banarasi Silk Saree",
			Category:        "saree",
			Color:           "Maroon",
			FabricType:      "Pure Silk",
			Size:            "6.3m with blouse piece",
			Description:     "Handwoven Banarasi saree with zari border and traditional buta work.",
			ImageURL:        "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=800",
			WholesalePrice:  models.NewMoneyFromInt(5200),
			RetailPrice:     models.NewMoneyFromInt(8500),
			DiscountPercent: 20,
			IsBestSeller:    true,
			StockQuantity:   6,
		},
		{
			Name:            "Banarasi Silk Saree",
			Category:        "saree",
			Color:           "Royal Blue",
			FabricType:      "Pure Silk",
			Size:            "6.3m with blouse piece",
			Description:     "Handwoven Banarasi saree with zari border and traditional buta work.",
			ImageURL:        "https://images.unsplash.com/photo-1583391733956-3750e0ff4e8b?w=800",
			WholesalePrice:  models.NewMoneyFromInt(5200),
			RetailPrice:     models.NewMoneyFromInt(8500),
			DiscountPercent: 20,
			IsBestSeller:    true,
			StockQuantity:   4,
		},
		{
			Name:            "Banarasi Silk Saree",
			Category:        "saree",
			Color:           "Bottle Green",
			FabricType:      "Pure Silk",
			Size:            "6.3m with blouse piece",
			Description:     "Handwoven Banarasi saree with zari border and traditional buta work.",
			ImageURL:        "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=800",
			WholesalePrice:  models.NewMoneyFromInt(5200),
			RetailPrice:     models.NewMoneyFromInt(8500),
			DiscountPercent: 20,
			StockQuantity:   0,
		},
		{
			Name:            "Chanderi Cotton Dupatta",
			Category:        "dupatta",
			Color:           "Mustard Yellow",
			FabricType:      "Chanderi Cotton",
			Size:            "2.5m",
			Description:     "Lightweight Chanderi dupatta with golden selvedge.",
			ImageURL:        "https://images.unsplash.com/photo-1606760227091-3dd870d97f1d?w=800",
			WholesalePrice:  models.NewMoneyFromInt(650),
			RetailPrice:     models.NewMoneyFromInt(1200),
			DiscountPercent: 15,
			IsNew:           true,
			StockQuantity:   20,
		},
		{
			Name:            "Chanderi Cotton Dupatta",
			Category:        "dupatta",
			Color:           "Rose Pink",
			FabricType:      "Chanderi Cotton",
			Size:            "2.5m",
			Description:     "Lightweight Chanderi dupatta with golden selvedge.",
			ImageURL:        "https://images.unsplash.com/photo-1612423284934-2850a4ea6b0f?w=800",
			WholesalePrice:  models.NewMoneyFromInt(650),
			RetailPrice:     models.NewMoneyFromInt(1200),
			DiscountPercent: 15,
			IsNew:           true,
			StockQuantity:   14,
		},
		{
			Name:            "Handloom Cotton Suit Set",
			Category:        "suit",
			FabricType:      "Handloom Cotton",
			Size:            "Top 2.5m, Bottom 2.5m, Dupatta 2.25m",
			Description:     "Unstitched three-piece suit set in breathable handloom cotton.",
			ImageURL:        "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=800",
			WholesalePrice:  models.NewMoneyFromInt(1400),
			RetailPrice:     models.NewMoneyFromInt(2400),
			DiscountPercent: 25,
			StockQuantity:   9,
		},
		{
			Name:            "Maheshwari Silk Cotton Saree",
			Category:        "saree",
			Color:           "Teal",
			FabricType:      "Silk Cotton",
			Size:            "5.5m without blouse piece",
			Description:     "Maheshwari saree with reversible border and stripe pallu.",
			ImageURL:        "https://images.unsplash.com/photo-1583392442155-0b6e0c829590?w=800",
			WholesalePrice:  models.NewMoneyFromInt(2100),
			RetailPrice:     models.NewMoneyFromInt(3600),
			DiscountPercent: 20,
			IsNew:           true,
			StockQuantity:   7,
		},
	}

	for i := range products {
		prod := &products[i]
		prod.Slug = catalog.Slugify(prod.Name, prod.Color)
		prod.SKU = catalog.GenerateSKU(prod.Name, prod.Color)

		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Created product: %s (%s)", prod.Slug, prod.SKU)
			}
			continue
		}
		existing.Category = prod.Category
		existing.FabricType = prod.FabricType
		existing.Size = prod.Size
		existing.Description = prod.Description
		existing.ImageURL = prod.ImageURL
		existing.Images = prod.Images
		existing.WholesalePrice = prod.WholesalePrice
		existing.RetailPrice = prod.RetailPrice
		existing.DiscountPercent = prod.DiscountPercent
		existing.IsNew = prod.IsNew
		existing.IsBestSeller = prod.IsBestSeller
		existing.StockQuantity = prod.StockQuantity
		if err := models.DB.Save(&existing).Error; err != nil {
			stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
		} else {
			stdLog.Printf("Updated product: %s", prod.Slug)
		}
	}

	// 添加优惠券
	now := time.Now()
	festiveEnd := now.AddDate(0, 1, 0)
	coupons := []models.Coupon{
		{
			Code:       "WELCOME10",
			Type:       constants.CouponTypePercent,
			Value:      models.NewMoneyFromInt(10),
			MinAmount:  models.NewMoneyFromInt(1000),
			UsageLimit: 0,
			IsActive:   true,
		},
		{
			Code:        "FESTIVE500",
			Type:        constants.CouponTypeFixed,
			Value:       models.NewMoneyFromInt(500),
			MinAmount:   models.NewMoneyFromInt(3000),
			MaxDiscount: models.NewMoneyFromInt(500),
			UsageLimit:  200,
			StartsAt:    &now,
			EndsAt:      &festiveEnd,
			IsActive:    true,
		},
	}

	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("Failed to create coupon %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("Created coupon: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("Coupon already exists: %s", coupon.Code)
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 7 Products (Banarasi saree ×3 colors, Chanderi dupatta ×2 colors, suit set, Maheshwari saree)")
	fmt.Println("- 2 Coupons (WELCOME10 percent, FESTIVE500 fixed)")
}
