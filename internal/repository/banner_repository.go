package repository

import (
	"time"

	"github.com/storefront-next/internal/models"

	"gorm.io/gorm"
)

// BannerRepository Banner 数据访问接口
type BannerRepository interface {
	List(filter BannerListFilter) ([]models.Banner, int64, error)
	ListValidByPosition(position string, limit int, now time.Time) ([]models.Banner, error)
	Create(banner *models.Banner) error
}

// GormBannerRepository GORM 实现
type GormBannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository 创建 Banner 仓库
func NewBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// List Banner 列表
func (r *GormBannerRepository) List(filter BannerListFilter) ([]models.Banner, int64, error) {
	var banners []models.Banner
	query := r.db.Model(&models.Banner{})

	if filter.Position != "" {
		query = query.Where("position = ?", filter.Position)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.OnlyValid {
		query = applyBannerWindow(query, time.Now())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order DESC, id ASC").Find(&banners).Error; err != nil {
		return nil, 0, err
	}
	return banners, total, nil
}

// ListValidByPosition 获取指定位置的有效 Banner
func (r *GormBannerRepository) ListValidByPosition(position string, limit int, now time.Time) ([]models.Banner, error) {
	var banners []models.Banner
	query := applyBannerWindow(r.db.Model(&models.Banner{}), now)

	if position != "" {
		query = query.Where("position = ?", position)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Order("sort_order DESC, id ASC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// Create 创建 Banner
func (r *GormBannerRepository) Create(banner *models.Banner) error {
	return r.db.Create(banner).Error
}

func applyBannerWindow(query *gorm.DB, now time.Time) *gorm.DB {
	return query.
		Where("is_active = ?", true).
		Where("(start_at IS NULL OR start_at <= ?)", now).
		Where("(end_at IS NULL OR end_at >= ?)", now)
}
