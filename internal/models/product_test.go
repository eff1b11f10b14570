package models

import "testing"

func TestProductDiscountPercent(t *testing.T) {
	cases := []struct {
		name     string
		price    Money
		original *Money
		want     int
	}{
		{name: "no original", price: 100, original: nil, want: 0},
		{name: "original below price", price: 100, original: MoneyPtr(90), want: 0},
		{name: "half off", price: 50, original: MoneyPtr(100), want: 50},
		{name: "rounded", price: 134900, original: MoneyPtr(159900), want: 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Product{PriceAmount: tc.price, OriginalPrice: tc.original}
			if got := p.DiscountPercent(); got != tc.want {
				t.Fatalf("discount percent want %d got %d", tc.want, got)
			}
		})
	}
}
