package repository

import (
	"errors"
	"strings"

	"github.com/storefront-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint, onlyActive bool) (*models.Product, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	ListRelated(product *models.Product, limit int) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.OnlyActive {
		query = query.Where("products.is_active = ?", true)
	}
	if filter.CategoryID != 0 {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if slug := strings.TrimSpace(filter.CategorySlug); slug != "" {
		query = query.Where("products.category_id IN (?)",
			r.db.Model(&models.Category{}).Select("id").Where("slug = ?", slug),
		)
	}
	if section := strings.TrimSpace(filter.Section); section != "" {
		query = query.Where("products.section = ?", section)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		if dbDialectName(r.db) == "postgres" {
			like = "%" + search + "%"
		}
		condition, argCount := buildSearchCondition(r.db, []string{"products.name", "products.slug"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("products.sort_order DESC, products.id ASC").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint, onlyActive bool) (*models.Product, error) {
	query := r.db.Preload("Category")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var product models.Product
	if err := query.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug 根据 slug 获取商品
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	query := r.db.Preload("Category").Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListRelated 相关商品：同分类优先，其余在售商品补齐
func (r *GormProductRepository) ListRelated(product *models.Product, limit int) ([]models.Product, error) {
	if product == nil || limit <= 0 {
		return []models.Product{}, nil
	}
	var related []models.Product
	if err := r.db.Where("is_active = ? AND id <> ? AND category_id = ?", true, product.ID, product.CategoryID).
		Order("sort_order DESC, id ASC").
		Limit(limit).
		Find(&related).Error; err != nil {
		return nil, err
	}
	if len(related) >= limit {
		return related, nil
	}

	var others []models.Product
	if err := r.db.Where("is_active = ? AND id <> ? AND category_id <> ?", true, product.ID, product.CategoryID).
		Order("sort_order DESC, id ASC").
		Limit(limit - len(related)).
		Find(&others).Error; err != nil {
		return nil, err
	}
	return append(related, others...), nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}
