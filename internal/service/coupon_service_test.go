package service

import (
	"testing"
	"time"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

func TestCouponServiceMergesConfiguredCoupons(t *testing.T) {
	db := setupCatalogDB(t)
	past := time.Now().Add(-time.Hour)
	coupons := []models.Coupon{
		{Code: "WELCOME50", Type: constants.CouponTypeFixed, Value: 50, IsActive: true},
		{Code: "FESTIVE20", Type: constants.CouponTypePercent, Value: 20, IsActive: true},
		{Code: "OLD30", Type: constants.CouponTypePercent, Value: 30, IsActive: true, EndsAt: &past},
		{Code: "save10", Type: constants.CouponTypeFixed, Value: 999, IsActive: true},
	}
	for i := range coupons {
		if err := db.Create(&coupons[i]).Error; err != nil {
			t.Fatalf("create coupon failed: %v", err)
		}
	}

	svc := NewCouponService(repository.NewCouponRepository(db), DefaultPricingConfig(), config.CatalogConfig{})
	calc := svc.Calculator()
	items := singleLine(1000, 1)

	if got := calc.Calculate(items, "welcome50"); got.Discount != 50 {
		t.Fatalf("configured fixed coupon should apply: %+v", got)
	}
	if got := calc.Calculate(items, "FESTIVE20"); got.Discount != 200 {
		t.Fatalf("configured percent coupon should apply: %+v", got)
	}
	if got := calc.Calculate(items, "OLD30"); got.CouponApplied {
		t.Fatalf("expired coupon should not apply: %+v", got)
	}
	if got := calc.Calculate(items, "SAVE10"); got.Discount != 100 {
		t.Fatalf("built-in rule should take precedence: %+v", got)
	}
}

func TestRuleFromCouponRejectsInvalidConfig(t *testing.T) {
	cases := []models.Coupon{
		{Code: "", Type: constants.CouponTypeFixed, Value: 10},
		{Code: "ZERO", Type: constants.CouponTypeFixed, Value: 0},
		{Code: "HUGE", Type: constants.CouponTypePercent, Value: 150},
		{Code: "ODD", Type: "bogo", Value: 10},
	}
	for _, coupon := range cases {
		if rule := RuleFromCoupon(coupon); rule != nil {
			t.Fatalf("coupon %+v should not produce a rule", coupon)
		}
	}
}

func TestFilterValidCoupons(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	got := filterValidCoupons([]models.Coupon{
		{Code: "A", IsActive: true},
		{Code: "B", IsActive: false},
		{Code: "C", IsActive: true, StartsAt: &future},
	}, now)
	if len(got) != 1 || got[0].Code != "A" {
		t.Fatalf("unexpected filtered coupons: %+v", got)
	}
}
