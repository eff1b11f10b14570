package service

import (
	"strings"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"

	"github.com/shopspring/decimal"
)

const (
	defaultFreeDeliveryThreshold = 500
	defaultDeliveryCharge        = 40
	defaultTaxRate               = "0.18"
)

// OrderTotals 订单金额汇总
type OrderTotals struct {
	Subtotal       models.Money `json:"subtotal"`
	Discount       models.Money `json:"discount"`
	DeliveryCharge models.Money `json:"delivery_charge"`
	Tax            models.Money `json:"tax"`
	GrandTotal     models.Money `json:"grand_total"`
	CouponCode     string       `json:"coupon_code,omitempty"`
	CouponApplied  bool         `json:"coupon_applied"`
}

// CouponRule 优惠码规则
type CouponRule interface {
	Code() string
	Discount(subtotal models.Money) models.Money
}

// PercentCouponRule 百分比折扣
type PercentCouponRule struct {
	code string
	rate decimal.Decimal
}

// NewPercentCouponRule 创建百分比折扣规则，percent 为整数百分比
func NewPercentCouponRule(code string, percent int64) PercentCouponRule {
	return PercentCouponRule{
		code: NormalizeCouponCode(code),
		rate: decimal.NewFromInt(percent).Div(decimal.NewFromInt(100)),
	}
}

// Code 优惠码
func (r PercentCouponRule) Code() string { return r.code }

// Discount 折扣金额（四舍五入到整数单位）
func (r PercentCouponRule) Discount(subtotal models.Money) models.Money {
	return subtotal.MulRate(r.rate)
}

// FixedCouponRule 固定金额立减
type FixedCouponRule struct {
	code   string
	amount models.Money
}

// NewFixedCouponRule 创建立减规则
func NewFixedCouponRule(code string, amount models.Money) FixedCouponRule {
	return FixedCouponRule{code: NormalizeCouponCode(code), amount: amount}
}

// Code 优惠码
func (r FixedCouponRule) Code() string { return r.code }

// Discount 立减金额
func (r FixedCouponRule) Discount(models.Money) models.Money {
	return r.amount
}

// DefaultCouponRules 内置优惠码
func DefaultCouponRules() []CouponRule {
	return []CouponRule{
		NewPercentCouponRule(constants.CouponCodeSave10, 10),
		NewFixedCouponRule(constants.CouponCodeFlat500, models.NewMoney(500)),
	}
}

// NormalizeCouponCode 统一优惠码格式
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DefaultPricingConfig 默认计价配置
func DefaultPricingConfig() config.PricingConfig {
	return config.PricingConfig{
		FreeDeliveryThreshold: defaultFreeDeliveryThreshold,
		DeliveryCharge:        defaultDeliveryCharge,
		TaxRate:               defaultTaxRate,
	}
}

// PricingCalculator 订单计价器，创建后不可变
type PricingCalculator struct {
	freeDeliveryThreshold models.Money
	deliveryCharge        models.Money
	taxRate               decimal.Decimal
	rules                 map[string]CouponRule
}

// NewPricingCalculator 创建计价器，同码规则以先出现者为准
func NewPricingCalculator(cfg config.PricingConfig, rules ...CouponRule) *PricingCalculator {
	threshold := cfg.FreeDeliveryThreshold
	if threshold < 0 {
		threshold = defaultFreeDeliveryThreshold
	}
	charge := cfg.DeliveryCharge
	if charge < 0 {
		charge = defaultDeliveryCharge
	}
	rawRate := strings.TrimSpace(cfg.TaxRate)
	if rawRate == "" {
		rawRate = defaultTaxRate
	}
	taxRate, err := decimal.NewFromString(rawRate)
	if err != nil || taxRate.IsNegative() {
		logger.Warnw("pricing_tax_rate_invalid", "tax_rate", cfg.TaxRate, "fallback", defaultTaxRate, "error", err)
		taxRate = decimal.RequireFromString(defaultTaxRate)
	}

	table := make(map[string]CouponRule, len(rules))
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		code := NormalizeCouponCode(rule.Code())
		if code == "" {
			continue
		}
		if _, exists := table[code]; exists {
			continue
		}
		table[code] = rule
	}

	return &PricingCalculator{
		freeDeliveryThreshold: models.NewMoney(threshold),
		deliveryCharge:        models.NewMoney(charge),
		taxRate:               taxRate,
		rules:                 table,
	}
}

// Lookup 查找优惠码规则
func (c *PricingCalculator) Lookup(code string) (CouponRule, bool) {
	normalized := NormalizeCouponCode(code)
	if normalized == "" {
		return nil, false
	}
	rule, ok := c.rules[normalized]
	return rule, ok
}

// Calculate 计算订单金额，未知或空优惠码按无折扣处理
func (c *PricingCalculator) Calculate(items []LineItem, couponCode string) OrderTotals {
	subtotal := SubtotalOf(items)
	totals := OrderTotals{Subtotal: subtotal}

	if rule, ok := c.Lookup(couponCode); ok {
		totals.Discount = rule.Discount(subtotal).Clamp(0, subtotal)
		totals.CouponCode = NormalizeCouponCode(couponCode)
		totals.CouponApplied = true
	}

	if subtotal > c.freeDeliveryThreshold {
		totals.DeliveryCharge = 0
	} else {
		totals.DeliveryCharge = c.deliveryCharge
	}

	// 税额按折扣前小计计算
	totals.Tax = subtotal.MulRate(c.taxRate)
	totals.GrandTotal = subtotal - totals.Discount + totals.DeliveryCharge + totals.Tax
	return totals
}
