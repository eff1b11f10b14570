package models

import (
	"github.com/shopspring/decimal"
)

// Money 统一金额类型（整数货币单位，不含小数位）
type Money int64

// NewMoney 从整数创建金额
func NewMoney(amount int64) Money {
	return Money(amount)
}

// NewMoneyFromDecimal 从 decimal 创建金额（四舍五入到整数单位）
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money(amount.Round(0).IntPart())
}

// Decimal 转换为 decimal 便于按比例计算
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

// Int64 返回整数值
func (m Money) Int64() int64 {
	return int64(m)
}

// Times 单价乘以数量
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// MulRate 按比例计算并一次性四舍五入
func (m Money) MulRate(rate decimal.Decimal) Money {
	return NewMoneyFromDecimal(m.Decimal().Mul(rate))
}

// Clamp 限制金额在 [lo, hi] 区间内
func (m Money) Clamp(lo, hi Money) Money {
	if m < lo {
		return lo
	}
	if m > hi {
		return hi
	}
	return m
}

// MoneyPtr 返回金额指针
func MoneyPtr(m Money) *Money {
	return &m
}
