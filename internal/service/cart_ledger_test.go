package service

import (
	"errors"
	"math"
	"testing"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"
)

func testProduct(id uint, price int64) *models.Product {
	return &models.Product{
		ID:          id,
		Name:        "Product",
		Image:       "product.jpg",
		PriceAmount: models.NewMoney(price),
		IsActive:    true,
	}
}

func TestLedgerAddItemMergesSameProduct(t *testing.T) {
	ledger := NewLedger()
	product := testProduct(1, 250)
	for _, qty := range []int{1, 3, 2} {
		if err := ledger.AddItem(product, qty); err != nil {
			t.Fatalf("add item failed: %v", err)
		}
	}
	if ledger.Len() != 1 {
		t.Fatalf("expected a single line item, got %d", ledger.Len())
	}
	item, ok := ledger.Item(1)
	if !ok || item.Quantity != 6 {
		t.Fatalf("expected merged quantity 6, got %+v", item)
	}
	if ledger.Subtotal() != 1500 {
		t.Fatalf("unexpected subtotal: %d", ledger.Subtotal())
	}
}

func TestLedgerAddItemDefaultsAndRejectsNegative(t *testing.T) {
	ledger := NewLedger()
	if err := ledger.AddItem(testProduct(1, 100), 0); err != nil {
		t.Fatalf("zero quantity should default to 1: %v", err)
	}
	if ledger.Count() != 1 {
		t.Fatalf("expected count 1, got %d", ledger.Count())
	}
	if err := ledger.AddItem(testProduct(2, 100), -2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("negative add should not change the ledger")
	}
	if err := ledger.AddItem(nil, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("nil product should be rejected, got %v", err)
	}
}

func TestLedgerPreservesInsertionOrderAndSnapshotsPrice(t *testing.T) {
	ledger := NewLedger()
	first := testProduct(3, 100)
	first.OriginalPrice = models.MoneyPtr(150)
	_ = ledger.AddItem(first, 1)
	_ = ledger.AddVariantItem(testProduct(1, 200), 1, "Blue / 128GB")
	_ = ledger.AddItem(testProduct(2, 300), 1)

	first.PriceAmount = 999
	items := ledger.Items()
	if items[0].ProductID != 3 || items[1].ProductID != 1 || items[2].ProductID != 2 {
		t.Fatalf("insertion order not preserved: %+v", items)
	}
	if items[0].UnitPrice != 100 {
		t.Fatalf("unit price should be captured at add time, got %d", items[0].UnitPrice)
	}
	if items[0].OriginalUnitPrice == nil || *items[0].OriginalUnitPrice != 150 {
		t.Fatalf("original price should be copied")
	}
	if items[1].Variant != "Blue / 128GB" {
		t.Fatalf("variant not kept: %q", items[1].Variant)
	}

	items[0].Quantity = 42
	*items[0].OriginalUnitPrice = 1
	again := ledger.Items()
	if again[0].Quantity != 1 || *again[0].OriginalUnitPrice != 150 {
		t.Fatalf("items snapshot should not alias ledger state")
	}
}

func TestLedgerSetQuantity(t *testing.T) {
	ledger := NewLedger()
	_ = ledger.AddItem(testProduct(1, 100), 2)

	for _, bad := range []int{0, -1} {
		if err := ledger.SetQuantity(1, bad); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("quantity %d should be rejected, got %v", bad, err)
		}
	}
	if item, _ := ledger.Item(1); item.Quantity != 2 {
		t.Fatalf("rejected update should leave quantity untouched, got %d", item.Quantity)
	}
	if err := ledger.SetQuantity(99, 5); err != nil {
		t.Fatalf("unknown product should be a no-op: %v", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("unknown product should not be added")
	}
	if err := ledger.SetQuantity(1, 7); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if ledger.Subtotal() != 700 {
		t.Fatalf("unexpected subtotal after update: %d", ledger.Subtotal())
	}
}

func TestLedgerQuantityUpperBound(t *testing.T) {
	ledger := NewLedger()
	product := testProduct(1, 1000)
	if err := ledger.AddItem(product, constants.MaxLineQuantity+1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("oversized add should be rejected, got %v", err)
	}
	if ledger.Len() != 0 {
		t.Fatalf("rejected add should not create a line")
	}

	if err := ledger.AddItem(product, constants.MaxLineQuantity); err != nil {
		t.Fatalf("add at the limit failed: %v", err)
	}
	for _, extra := range []int{1, 2, math.MaxInt} {
		if err := ledger.AddItem(product, extra); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("adding %d past the limit should be rejected, got %v", extra, err)
		}
	}
	if item, _ := ledger.Item(1); item.Quantity != constants.MaxLineQuantity {
		t.Fatalf("rejected add should leave quantity untouched, got %d", item.Quantity)
	}

	for _, bad := range []int{constants.MaxLineQuantity + 1, math.MaxInt / 10} {
		if err := ledger.SetQuantity(1, bad); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("quantity %d should be rejected, got %v", bad, err)
		}
	}
	if ledger.Count() != constants.MaxLineQuantity {
		t.Fatalf("rejected update should leave count untouched, got %d", ledger.Count())
	}

	totals := NewPricingCalculator(DefaultPricingConfig()).Calculate(ledger.Items(), "")
	if totals.Subtotal <= 0 || totals.Tax <= 0 || totals.GrandTotal <= totals.Subtotal {
		t.Fatalf("totals at the limit should stay positive: %+v", totals)
	}
}

func TestLedgerRemoveAndClear(t *testing.T) {
	ledger := NewLedger()
	if ledger.Subtotal() != 0 || ledger.Count() != 0 || !ledger.IsEmpty() {
		t.Fatalf("empty ledger should have zero subtotal and count")
	}
	_ = ledger.AddItem(testProduct(1, 100), 1)
	_ = ledger.AddItem(testProduct(2, 50), 2)

	ledger.RemoveItem(42)
	if ledger.Len() != 2 || ledger.Subtotal() != 200 {
		t.Fatalf("removing a missing id should not change the ledger")
	}
	ledger.RemoveItem(1)
	if ledger.Len() != 1 || ledger.Subtotal() != 100 {
		t.Fatalf("unexpected state after remove: len=%d subtotal=%d", ledger.Len(), ledger.Subtotal())
	}
	ledger.Clear()
	if !ledger.IsEmpty() || ledger.Subtotal() != 0 {
		t.Fatalf("ledger should be empty after clear")
	}
}

func TestLedgerCountChangedNotifications(t *testing.T) {
	ledger := NewLedger()
	type change struct{ old, new int }
	var changes []change
	unsubscribe := ledger.OnCountChanged(func(oldCount, newCount int) {
		changes = append(changes, change{oldCount, newCount})
	})

	_ = ledger.AddItem(testProduct(1, 10), 2)
	_ = ledger.SetQuantity(1, 5)
	_ = ledger.SetQuantity(1, 0)
	ledger.RemoveItem(77)
	ledger.RemoveItem(1)

	want := []change{{0, 2}, {2, 5}, {5, 0}}
	if len(changes) != len(want) {
		t.Fatalf("unexpected notifications: %+v", changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Fatalf("notification %d mismatch: got %+v want %+v", i, changes[i], want[i])
		}
	}

	unsubscribe()
	_ = ledger.AddItem(testProduct(2, 10), 1)
	if len(changes) != len(want) {
		t.Fatalf("listener should not fire after unsubscribe")
	}
}
