package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCatalogRepositoryTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate catalog failed: %v", err)
	}
	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, slug string, active bool, sortOrder int) *models.Category {
	t.Helper()
	category := &models.Category{Slug: slug, Name: strings.ToUpper(slug), IsActive: true, SortOrder: sortOrder}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if !active {
		if err := db.Model(category).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate category failed: %v", err)
		}
	}
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, categoryID uint, slug, section string, price int64, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  categoryID,
		Slug:        slug,
		Name:        "Product " + slug,
		PriceAmount: models.NewMoney(price),
		Section:     section,
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if !active {
		if err := db.Model(product).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate product failed: %v", err)
		}
	}
	return product
}

func TestProductRepositoryListFilters(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	repo := NewProductRepository(db)
	electronics := createTestCategory(t, db, "electronics", true, 10)
	fashion := createTestCategory(t, db, "fashion", true, 5)

	createTestProduct(t, db, electronics.ID, "iphone-15", constants.ProductSectionDeals, 134900, true)
	createTestProduct(t, db, electronics.ID, "galaxy-s24", constants.ProductSectionTrending, 79999, true)
	createTestProduct(t, db, fashion.ID, "denim-jacket", constants.ProductSectionFashion, 1999, true)
	createTestProduct(t, db, fashion.ID, "old-shirt", constants.ProductSectionFashion, 499, false)

	deals, total, err := repo.List(ProductListFilter{Section: constants.ProductSectionDeals, OnlyActive: true})
	if err != nil {
		t.Fatalf("list deals failed: %v", err)
	}
	if total != 1 || len(deals) != 1 || deals[0].Slug != "iphone-15" {
		t.Fatalf("unexpected deals: total=%d items=%+v", total, deals)
	}

	fashionItems, total, err := repo.List(ProductListFilter{CategorySlug: "fashion", OnlyActive: true, WithCategory: true})
	if err != nil {
		t.Fatalf("list by category slug failed: %v", err)
	}
	if total != 1 || fashionItems[0].Slug != "denim-jacket" {
		t.Fatalf("inactive product should be filtered, got total=%d", total)
	}
	if fashionItems[0].Category == nil || fashionItems[0].Category.Slug != "fashion" {
		t.Fatalf("category should be preloaded")
	}

	found, _, err := repo.List(ProductListFilter{Search: "GALAXY", OnlyActive: true})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 1 || found[0].Slug != "galaxy-s24" {
		t.Fatalf("case-insensitive search mismatch: %+v", found)
	}

	page, total, err := repo.List(ProductListFilter{OnlyActive: true, Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if total != 3 || len(page) != 1 {
		t.Fatalf("unexpected page: total=%d len=%d", total, len(page))
	}
}

func TestProductRepositoryGetByIDOnlyActive(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "home", true, 0)
	hidden := createTestProduct(t, db, category.ID, "lamp", constants.ProductSectionRecommended, 899, false)

	got, err := repo.GetByID(hidden.ID, true)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got != nil {
		t.Fatalf("inactive product should be hidden")
	}
	got, err = repo.GetByID(hidden.ID, false)
	if err != nil || got == nil {
		t.Fatalf("expected product without active filter, err=%v", err)
	}
	missing, err := repo.GetByID(9999, false)
	if err != nil || missing != nil {
		t.Fatalf("missing product should return nil, nil; got %+v %v", missing, err)
	}
}

func TestProductRepositoryListRelatedPrefersSameCategory(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	repo := NewProductRepository(db)
	electronics := createTestCategory(t, db, "electronics", true, 0)
	fashion := createTestCategory(t, db, "fashion", true, 0)

	base := createTestProduct(t, db, electronics.ID, "laptop", constants.ProductSectionDeals, 55000, true)
	createTestProduct(t, db, fashion.ID, "sneakers", constants.ProductSectionFashion, 2999, true)
	createTestProduct(t, db, electronics.ID, "mouse", constants.ProductSectionDeals, 599, true)
	createTestProduct(t, db, electronics.ID, "dead-stock", constants.ProductSectionDeals, 10, false)

	related, err := repo.ListRelated(base, 6)
	if err != nil {
		t.Fatalf("list related failed: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected 2 related products, got %d", len(related))
	}
	if related[0].Slug != "mouse" {
		t.Fatalf("same-category product should come first, got %s", related[0].Slug)
	}
	for _, item := range related {
		if item.ID == base.ID {
			t.Fatalf("related list should exclude the product itself")
		}
	}

	limited, err := repo.ListRelated(base, 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("limit not applied: len=%d err=%v", len(limited), err)
	}
}

func TestCategoryRepositoryListActive(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	repo := NewCategoryRepository(db)
	createTestCategory(t, db, "mobiles", true, 1)
	createTestCategory(t, db, "beauty", true, 9)
	createTestCategory(t, db, "archived", false, 100)

	categories, err := repo.ListActive()
	if err != nil {
		t.Fatalf("list active categories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 active categories, got %d", len(categories))
	}
	if categories[0].Slug != "beauty" {
		t.Fatalf("higher sort order should come first, got %s", categories[0].Slug)
	}
	all, err := repo.List()
	if err != nil || len(all) != 3 {
		t.Fatalf("list all categories mismatch: len=%d err=%v", len(all), err)
	}
	count, err := repo.CountBySlug("mobiles")
	if err != nil || count != 1 {
		t.Fatalf("count by slug mismatch: %d %v", count, err)
	}
}

func TestBannerRepositoryListValidByPosition(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	repo := NewBannerRepository(db)
	now := time.Now()
	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)

	banners := []models.Banner{
		{Position: constants.BannerPositionHomeHero, Title: "Big Sale", Image: "a.jpg", IsActive: true, SortOrder: 2},
		{Position: constants.BannerPositionHomeHero, Title: "Ended", Image: "b.jpg", IsActive: true, EndAt: &past},
		{Position: constants.BannerPositionHomeHero, Title: "Upcoming", Image: "c.jpg", IsActive: true, StartAt: &future},
		{Position: constants.BannerPositionHomeHero, Title: "New Arrivals", Image: "d.jpg", IsActive: true, SortOrder: 1},
		{Position: "sidebar", Title: "Other", Image: "e.jpg", IsActive: true},
	}
	for i := range banners {
		if err := repo.Create(&banners[i]); err != nil {
			t.Fatalf("create banner failed: %v", err)
		}
	}

	got, err := repo.ListValidByPosition(constants.BannerPositionHomeHero, 0, now)
	if err != nil {
		t.Fatalf("list valid banners failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 valid hero banners, got %d", len(got))
	}
	if got[0].Title != "Big Sale" || got[1].Title != "New Arrivals" {
		t.Fatalf("unexpected banner order: %s, %s", got[0].Title, got[1].Title)
	}
}

func TestCouponRepositoryGetByCodeCaseInsensitive(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	repo := NewCouponRepository(db)
	past := time.Now().Add(-time.Hour)
	if err := repo.Create(&models.Coupon{Code: "WELCOME50", Type: constants.CouponTypeFixed, Value: 50, IsActive: true}); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	if err := repo.Create(&models.Coupon{Code: "EXPIRED5", Type: constants.CouponTypePercent, Value: 5, IsActive: true, EndsAt: &past}); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	coupon, err := repo.GetByCode("  welcome50 ")
	if err != nil {
		t.Fatalf("get coupon failed: %v", err)
	}
	if coupon == nil || coupon.Value != 50 {
		t.Fatalf("expected coupon lookup to ignore case and whitespace")
	}

	valid, err := repo.ListValid(time.Now())
	if err != nil {
		t.Fatalf("list valid coupons failed: %v", err)
	}
	if len(valid) != 1 || valid[0].Code != "WELCOME50" {
		t.Fatalf("expired coupon should be excluded, got %+v", valid)
	}
}
