package service

import (
	"errors"
	"testing"
)

func TestPaymentMethodServiceList(t *testing.T) {
	svc := NewPaymentMethodService()
	groups := svc.List()
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}
	total := 0
	for _, group := range groups {
		total += len(group.Methods)
	}
	if total != 11 {
		t.Fatalf("expected 11 methods, got %d", total)
	}
	groups[0].Methods[0].Name = "mutated"
	if svc.List()[0].Methods[0].Name != "Cash on Delivery" {
		t.Fatalf("list should return a copy")
	}
}

func TestPaymentMethodServiceGet(t *testing.T) {
	svc := NewPaymentMethodService()
	method, err := svc.Get(" GPay ")
	if err != nil || method.Name != "Google Pay" {
		t.Fatalf("expected google pay, got %+v err=%v", method, err)
	}
	if _, err := svc.Get(""); !errors.Is(err, ErrPaymentMethodRequired) {
		t.Fatalf("empty id should require a method, got %v", err)
	}
	if _, err := svc.Get("bitcoin"); !errors.Is(err, ErrPaymentMethodInvalid) {
		t.Fatalf("unknown id should be invalid, got %v", err)
	}
}
