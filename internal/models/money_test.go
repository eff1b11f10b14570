package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustRate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMoneyMulRateRoundsHalfUp(t *testing.T) {
	// 2.5 向上取整为 3
	if got := Money(25).MulRate(mustRate("0.1")); got != 3 {
		t.Fatalf("want 3 got %d", got)
	}
	if got := Money(250).MulRate(mustRate("0.18")); got != 45 {
		t.Fatalf("want 45 got %d", got)
	}
}

func TestMoneyClamp(t *testing.T) {
	if got := Money(500).Clamp(0, 300); got != 300 {
		t.Fatalf("clamp high want 300 got %d", got)
	}
	if got := Money(-5).Clamp(0, 300); got != 0 {
		t.Fatalf("clamp low want 0 got %d", got)
	}
	if got := Money(120).Clamp(0, 300); got != 120 {
		t.Fatalf("clamp within want 120 got %d", got)
	}
}
