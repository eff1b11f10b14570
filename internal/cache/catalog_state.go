package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/storefront-next/internal/models"
)

const defaultCatalogCacheTTL = 5 * time.Minute

const validCouponsKey = "catalog:coupons:valid"

func productKey(productID uint) string {
	return fmt.Sprintf("catalog:product:%d", productID)
}

func normalizeCatalogTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return defaultCatalogCacheTTL
	}
	return ttl
}

// GetProduct 获取商品快照
func GetProduct(ctx context.Context, productID uint) (*models.Product, bool, error) {
	if productID == 0 {
		return nil, false, nil
	}
	var product models.Product
	hit, err := GetJSON(ctx, productKey(productID), &product)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &product, true, nil
}

// SetProduct 写入商品快照
func SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	if product == nil || product.ID == 0 {
		return nil
	}
	return SetJSON(ctx, productKey(product.ID), product, normalizeCatalogTTL(ttl))
}

// DelProduct 删除商品快照
func DelProduct(ctx context.Context, productID uint) error {
	if productID == 0 {
		return nil
	}
	return Del(ctx, productKey(productID))
}

// GetValidCoupons 获取生效中的优惠码列表
func GetValidCoupons(ctx context.Context) ([]models.Coupon, bool, error) {
	var coupons []models.Coupon
	hit, err := GetJSON(ctx, validCouponsKey, &coupons)
	if err != nil || !hit {
		return nil, hit, err
	}
	return coupons, true, nil
}

// SetValidCoupons 写入生效中的优惠码列表
func SetValidCoupons(ctx context.Context, coupons []models.Coupon, ttl time.Duration) error {
	if coupons == nil {
		coupons = []models.Coupon{}
	}
	return SetJSON(ctx, validCouponsKey, coupons, normalizeCatalogTTL(ttl))
}

// DelValidCoupons 删除优惠码列表缓存
func DelValidCoupons(ctx context.Context) error {
	return Del(ctx, validCouponsKey)
}
