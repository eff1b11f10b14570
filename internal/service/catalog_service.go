package service

import (
	"context"
	"strings"
	"time"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

const (
	defaultRelatedLimit = 6
	catalogCacheTimeout = 200 * time.Millisecond
)

// Catalog 商品目录（只读）
type Catalog interface {
	GetProduct(id uint) (*models.Product, error)
}

// ProductDetail 商品详情与相关推荐
type ProductDetail struct {
	Product         *models.Product  `json:"product"`
	DiscountPercent int              `json:"discount_percent"`
	Related         []models.Product `json:"related"`
}

// ProductListInput 商品列表查询参数
type ProductListInput struct {
	Section      string
	CategorySlug string
	Search       string
	Page         int
	PageSize     int
}

// CatalogService 商品目录服务
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cacheTTL     time.Duration
	relatedLimit int
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, cfg config.CatalogConfig) *CatalogService {
	relatedLimit := cfg.RelatedLimit
	if relatedLimit <= 0 {
		relatedLimit = defaultRelatedLimit
	}
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheTTL:     time.Duration(cfg.CacheTTLSeconds) * time.Second,
		relatedLimit: relatedLimit,
	}
}

// GetProduct 获取在售商品，优先读缓存
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	ctx, cancel := context.WithTimeout(context.Background(), catalogCacheTimeout)
	defer cancel()

	if cached, hit, err := cache.GetProduct(ctx, id); err != nil {
		logger.Warnw("catalog_cache_get_failed", "product_id", id, "error", err)
	} else if hit && cached.IsActive {
		return cached, nil
	}

	product, err := s.productRepo.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := cache.SetProduct(ctx, product, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_set_failed", "product_id", id, "error", err)
	}
	return product, nil
}

// ListProducts 按栏目或分类列出在售商品
func (s *CatalogService) ListProducts(input ProductListInput) ([]models.Product, int64, error) {
	section := strings.ToLower(strings.TrimSpace(input.Section))
	if section != "" && !constants.IsValidProductSection(section) {
		return nil, 0, ErrInvalidSection
	}
	categorySlug := strings.ToLower(strings.TrimSpace(input.CategorySlug))
	if categorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(categorySlug)
		if err != nil {
			return nil, 0, err
		}
		if category == nil || !category.IsActive {
			return nil, 0, ErrCategoryNotFound
		}
	}
	return s.productRepo.List(repository.ProductListFilter{
		Page:         input.Page,
		PageSize:     input.PageSize,
		CategorySlug: categorySlug,
		Section:      section,
		Search:       input.Search,
		OnlyActive:   true,
	})
}

// GetDetail 商品详情及相关推荐
func (s *CatalogService) GetDetail(id uint) (*ProductDetail, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(product)
}

// GetDetailBySlug 按 slug 获取商品详情
func (s *CatalogService) GetDetailBySlug(slug string) (*ProductDetail, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.buildDetail(product)
}

func (s *CatalogService) buildDetail(product *models.Product) (*ProductDetail, error) {
	related, err := s.productRepo.ListRelated(product, s.relatedLimit)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{
		Product:         product,
		DiscountPercent: product.DiscountPercent(),
		Related:         related,
	}, nil
}
