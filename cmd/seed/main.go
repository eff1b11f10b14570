package main

import (
	"strings"
	"time"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"

	"gorm.io/gorm"
)

const unsplash = "https://images.unsplash.com/"

type seedProduct struct {
	category      string
	slug          string
	name          string
	image         string
	price         int64
	originalPrice int64
	rating        float64
	reviews       int
	badge         string
	section       string
}

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
	}, cfg.Server.Mode == "debug"); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(models.DB)
	productRepo := repository.NewProductRepository(models.DB)
	bannerRepo := repository.NewBannerRepository(models.DB)
	couponRepo := repository.NewCouponRepository(models.DB)

	// 添加分类
	categoryNames := []struct {
		name  string
		image string
	}{
		{"Mobiles", "photo-1511707171634-5f897ff02aa9"},
		{"Laptops", "photo-1496181133206-80ce9b88a853"},
		{"Electronics", "photo-1468495244123-6c6c332eeece"},
		{"Fashion", "photo-1445205170230-053b83016050"},
		{"Home", "photo-1484101403633-562f891dc89a"},
		{"Watches", "photo-1523275335684-37898b6baf30"},
		{"Groceries", "photo-1542838132-92c53300491e"},
		{"Gaming", "photo-1612287230202-1ff1d85d1bdf"},
		{"Beauty", "photo-1596462502278-27bfdc403348"},
		{"Sports", "photo-1461896836934-ffe607ba8211"},
		{"Books", "photo-1512820790803-83ca734da794"},
	}

	categoryIDs := map[string]uint{}
	for i, item := range categoryNames {
		slug := strings.ToLower(item.name)
		if count, err := categoryRepo.CountBySlug(slug); err == nil && count > 0 {
			existing, err := categoryRepo.GetBySlug(slug)
			if err == nil && existing != nil {
				categoryIDs[slug] = existing.ID
			}
			stdLog.Printf("Category already exists: %s", slug)
			continue
		}
		category := models.Category{
			Slug:      slug,
			Name:      item.name,
			Image:     unsplash + item.image + "?w=80&h=80&fit=crop&auto=format",
			IsActive:  true,
			SortOrder: len(categoryNames) - i,
		}
		if err := categoryRepo.Create(&category); err != nil {
			stdLog.Printf("Failed to create category %s: %v", slug, err)
			continue
		}
		categoryIDs[slug] = category.ID
		stdLog.Printf("Created category: %s", slug)
	}

	// 添加商品
	products := []seedProduct{
		{"mobiles", "galaxy-s24-ultra", "Samsung Galaxy S24 Ultra 5G (Titanium Gray, 256GB)", "photo-1610945265064-0e34e5519bbf", 129999, 144999, 4.6, 12847, "Deal of the Day", constants.ProductSectionDeals},
		{"mobiles", "iphone-15-pro", "Apple iPhone 15 Pro (Natural Titanium, 128GB)", "photo-1695048133142-1a20484d2569", 134900, 0, 4.7, 8421, "", constants.ProductSectionDeals},
		{"laptops", "macbook-air-m3", "Apple MacBook Air M3 13-inch (8GB RAM, 256GB SSD)", "photo-1517336714731-489689fd1ca8", 114900, 119900, 4.8, 3210, "Best Seller", constants.ProductSectionDeals},
		{"electronics", "sony-wh-1000xm5", "Sony WH-1000XM5 Wireless Noise Cancelling Headphones", "photo-1505740420928-5e560c06d30e", 26990, 34990, 4.5, 9876, "Limited Offer", constants.ProductSectionDeals},
		{"electronics", "boat-airdopes-141", "boAt Airdopes 141 Bluetooth TWS Earbuds", "photo-1572569511254-d8f925fe2cbb", 1299, 4490, 4.1, 45210, "", constants.ProductSectionTrending},
		{"watches", "noise-colorfit-pro", "Noise ColorFit Pro 5 Smart Watch", "photo-1523275335684-37898b6baf30", 3499, 6999, 4.2, 15632, "Trending", constants.ProductSectionTrending},
		{"gaming", "ps5-slim", "Sony PlayStation 5 Slim Console", "photo-1606813907291-d86efa9b94db", 44990, 54990, 4.8, 6543, "", constants.ProductSectionTrending},
		{"home", "philips-air-fryer", "Philips Air Fryer HD9252 (4.1L, 1400W)", "photo-1585515320310-259814833e62", 7499, 9995, 4.4, 22108, "", constants.ProductSectionTrending},
		{"fashion", "levis-511-jeans", "Levi's Men's 511 Slim Fit Jeans", "photo-1542272604-787c3835535d", 1799, 3599, 4.3, 7654, "", constants.ProductSectionFashion},
		{"fashion", "nike-air-max", "Nike Air Max SYSTM Running Shoes", "photo-1542291026-7eec264c27ff", 6295, 7495, 4.5, 3421, "New", constants.ProductSectionFashion},
		{"fashion", "ray-ban-aviator", "Ray-Ban Aviator Classic Sunglasses", "photo-1572635196237-14b3f281503f", 8490, 10890, 4.6, 2987, "", constants.ProductSectionFashion},
		{"beauty", "lakme-kit", "Lakme Absolute Makeup Essentials Kit", "photo-1596462502278-27bfdc403348", 1499, 2299, 4.0, 5432, "", constants.ProductSectionFashion},
		{"books", "atomic-habits", "Atomic Habits by James Clear (Paperback)", "photo-1512820790803-83ca734da794", 399, 799, 4.7, 65432, "Best Seller", constants.ProductSectionRecommended},
		{"groceries", "tata-tea-gold", "Tata Tea Gold (1kg)", "photo-1542838132-92c53300491e", 545, 620, 4.4, 18765, "", constants.ProductSectionRecommended},
		{"sports", "yonex-racquet", "Yonex Nanoray Light 18i Badminton Racquet", "photo-1461896836934-ffe607ba8211", 1590, 2390, 4.3, 8876, "", constants.ProductSectionRecommended},
		{"laptops", "dell-inspiron-15", "Dell Inspiron 15 Laptop (i5 13th Gen, 16GB, 512GB)", "photo-1496181133206-80ce9b88a853", 58990, 72990, 4.2, 2143, "", constants.ProductSectionRecommended},
	}

	// 商品在同一事务内写入，已存在时刷新价格与栏目
	err := productRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := productRepo.WithTx(tx)
		for i, item := range products {
			categoryID, ok := categoryIDs[item.category]
			if !ok {
				stdLog.Printf("Skip product %s: category %s missing", item.slug, item.category)
				continue
			}
			product, err := txRepo.GetBySlug(item.slug, false)
			if err != nil {
				return err
			}
			created := product == nil
			if created {
				product = &models.Product{Slug: item.slug, IsActive: true}
			}
			product.CategoryID = categoryID
			product.Name = item.name
			product.Image = unsplash + item.image + "?w=400&h=400&fit=crop&auto=format"
			product.PriceAmount = models.NewMoney(item.price)
			product.OriginalPrice = nil
			if item.originalPrice > 0 {
				product.OriginalPrice = models.MoneyPtr(models.NewMoney(item.originalPrice))
			}
			product.Rating = item.rating
			product.Reviews = item.reviews
			product.Badge = item.badge
			product.Section = item.section
			product.SortOrder = len(products) - i

			if created {
				if err := txRepo.Create(product); err != nil {
					return err
				}
				stdLog.Printf("Created product: %s", item.slug)
				continue
			}
			if err := txRepo.Update(product); err != nil {
				return err
			}
			stdLog.Printf("Updated product: %s", item.slug)
		}
		return nil
	})
	if err != nil {
		stdLog.Fatalf("Failed to seed products: %v", err)
	}

	// 添加首页轮播
	banners := []models.Banner{
		{Title: "Mega Electronics Sale", Subtitle: "Up to 50% off on Smartphones & Laptops", CTA: "Shop Now", LinkValue: "/category/electronics", SortOrder: 3},
		{Title: "New Fashion Arrivals", Subtitle: "Discover the latest trends for every occasion", CTA: "Explore", LinkValue: "/category/fashion", SortOrder: 2},
		{Title: "Home Essentials", Subtitle: "Premium appliances at unbeatable prices", CTA: "View Deals", LinkValue: "/category/home", SortOrder: 1},
	}
	bannerImages := []string{
		"photo-1468495244123-6c6c332eeece",
		"photo-1445205170230-053b83016050",
		"photo-1484101403633-562f891dc89a",
	}
	existingBanners, _, err := bannerRepo.List(repository.BannerListFilter{Position: constants.BannerPositionHomeHero})
	if err != nil {
		stdLog.Fatalf("Failed to load banners: %v", err)
	}
	existingTitles := make(map[string]bool, len(existingBanners))
	for _, banner := range existingBanners {
		existingTitles[banner.Title] = true
	}
	for i := range banners {
		banner := banners[i]
		if existingTitles[banner.Title] {
			stdLog.Printf("Banner already exists: %s", banner.Title)
			continue
		}
		banner.Position = constants.BannerPositionHomeHero
		banner.Image = unsplash + bannerImages[i] + "?w=1600&h=500&fit=crop&auto=format"
		banner.IsActive = true
		if err := bannerRepo.Create(&banner); err != nil {
			stdLog.Printf("Failed to create banner %s: %v", banner.Title, err)
			continue
		}
		stdLog.Printf("Created banner: %s", banner.Title)
	}

	// 添加运营优惠码，内置 SAVE10 / FLAT500 无需入库
	endsAt := time.Now().AddDate(0, 3, 0)
	coupons := []models.Coupon{
		{Code: "WELCOME5", Type: constants.CouponTypePercent, Value: 5, IsActive: true},
		{Code: "FESTIVE250", Type: constants.CouponTypeFixed, Value: 250, EndsAt: &endsAt, IsActive: true},
	}
	for i := range coupons {
		coupon := coupons[i]
		if existing, err := couponRepo.GetByCode(coupon.Code); err == nil && existing != nil {
			stdLog.Printf("Coupon already exists: %s", coupon.Code)
			continue
		}
		if err := couponRepo.Create(&coupon); err != nil {
			stdLog.Printf("Failed to create coupon %s: %v", coupon.Code, err)
			continue
		}
		stdLog.Printf("Created coupon: %s", coupon.Code)
	}

	// 输出分类商品统计
	allCategories, err := categoryRepo.List()
	if err != nil {
		stdLog.Fatalf("Failed to load categories: %v", err)
	}
	for _, category := range allCategories {
		count, err := categoryRepo.CountProducts(category.ID)
		if err != nil {
			stdLog.Printf("Failed to count products of %s: %v", category.Slug, err)
			continue
		}
		stdLog.Printf("Category %s: %d products", category.Slug, count)
	}

	stdLog.Println("Seed completed")
}
