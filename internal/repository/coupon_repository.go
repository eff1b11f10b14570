package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/storefront-next/internal/models"

	"gorm.io/gorm"
)

// CouponRepository 优惠码数据访问接口
type CouponRepository interface {
	GetByCode(code string) (*models.Coupon, error)
	ListValid(now time.Time) ([]models.Coupon, error)
	Create(coupon *models.Coupon) error
}

// GormCouponRepository GORM 实现
type GormCouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository 创建优惠码仓库
func NewCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// GetByCode 根据优惠码获取（不区分大小写）
func (r *GormCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if err := r.db.Where("UPPER(code) = ?", normalized).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// ListValid 当前生效的优惠码
func (r *GormCouponRepository) ListValid(now time.Time) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.Where("is_active = ?", true).
		Where("(starts_at IS NULL OR starts_at <= ?)", now).
		Where("(ends_at IS NULL OR ends_at >= ?)", now).
		Order("id ASC").
		Find(&coupons).Error
	if err != nil {
		return nil, err
	}
	return coupons, nil
}

// Create 创建优惠码
func (r *GormCouponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}
