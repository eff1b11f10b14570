package service

import (
	"context"
	"time"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

// PricingSource 提供当前生效的计价器
type PricingSource interface {
	Calculator() *PricingCalculator
}

// Calculator 计价器本身即为固定来源
func (c *PricingCalculator) Calculator() *PricingCalculator {
	return c
}

// CouponService 优惠码服务：内置规则加运营配置规则
type CouponService struct {
	couponRepo repository.CouponRepository
	pricing    config.PricingConfig
	cacheTTL   time.Duration
	base       *PricingCalculator
}

// NewCouponService 创建优惠码服务
func NewCouponService(couponRepo repository.CouponRepository, pricing config.PricingConfig, catalog config.CatalogConfig) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		pricing:    pricing,
		cacheTTL:   time.Duration(catalog.CacheTTLSeconds) * time.Second,
		base:       NewPricingCalculator(pricing, DefaultCouponRules()...),
	}
}

// Calculator 构建包含有效运营优惠码的计价器，内置规则优先
func (s *CouponService) Calculator() *PricingCalculator {
	if s.couponRepo == nil {
		return s.base
	}
	coupons, err := s.validCoupons()
	if err != nil {
		logger.Warnw("coupon_load_failed", "error", err)
		return s.base
	}
	if len(coupons) == 0 {
		return s.base
	}
	rules := DefaultCouponRules()
	for _, coupon := range coupons {
		if rule := RuleFromCoupon(coupon); rule != nil {
			rules = append(rules, rule)
		}
	}
	return NewPricingCalculator(s.pricing, rules...)
}

func (s *CouponService) validCoupons() ([]models.Coupon, error) {
	ctx, cancel := context.WithTimeout(context.Background(), catalogCacheTimeout)
	defer cancel()

	if cached, hit, err := cache.GetValidCoupons(ctx); err != nil {
		logger.Warnw("coupon_cache_get_failed", "error", err)
	} else if hit {
		return filterValidCoupons(cached, time.Now()), nil
	}

	coupons, err := s.couponRepo.ListValid(time.Now())
	if err != nil {
		return nil, err
	}
	if err := cache.SetValidCoupons(ctx, coupons, s.cacheTTL); err != nil {
		logger.Warnw("coupon_cache_set_failed", "error", err)
	}
	return coupons, nil
}

// RuleFromCoupon 运营优惠码转换为计价规则，非法配置返回 nil
func RuleFromCoupon(coupon models.Coupon) CouponRule {
	if NormalizeCouponCode(coupon.Code) == "" || coupon.Value <= 0 {
		return nil
	}
	switch coupon.Type {
	case constants.CouponTypeFixed:
		return NewFixedCouponRule(coupon.Code, models.NewMoney(coupon.Value))
	case constants.CouponTypePercent:
		if coupon.Value > 100 {
			return nil
		}
		return NewPercentCouponRule(coupon.Code, coupon.Value)
	default:
		return nil
	}
}

// 缓存命中时仍按当前时间复核有效期
func filterValidCoupons(coupons []models.Coupon, now time.Time) []models.Coupon {
	valid := make([]models.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		if !coupon.IsActive {
			continue
		}
		if coupon.StartsAt != nil && now.Before(*coupon.StartsAt) {
			continue
		}
		if coupon.EndsAt != nil && now.After(*coupon.EndsAt) {
			continue
		}
		valid = append(valid, coupon)
	}
	return valid
}
