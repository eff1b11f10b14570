package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/storefront-next/internal/models"

	"github.com/cucumber/godog"
)

type pricingFeatureContext struct {
	ledger     *Ledger
	calculator *PricingCalculator
	totals     OrderTotals
	err        error
}

func (c *pricingFeatureContext) reset() {
	c.ledger = NewLedger()
	c.calculator = NewPricingCalculator(DefaultPricingConfig(), DefaultCouponRules()...)
	c.totals = OrderTotals{}
	c.err = nil
}

func (c *pricingFeatureContext) anEmptyCart() error {
	c.ledger.Clear()
	return nil
}

func (c *pricingFeatureContext) productPricedAtIsAddedTimes(id, price, quantity int) error {
	product := &models.Product{ID: uint(id), Name: fmt.Sprintf("product-%d", id), PriceAmount: models.NewMoney(int64(price)), IsActive: true}
	return c.ledger.AddItem(product, quantity)
}

func (c *pricingFeatureContext) iPriceTheCartWithoutACoupon() error {
	c.totals = c.calculator.Calculate(c.ledger.Items(), "")
	return nil
}

func (c *pricingFeatureContext) iPriceTheCartWithCoupon(code string) error {
	c.totals = c.calculator.Calculate(c.ledger.Items(), code)
	return nil
}

func (c *pricingFeatureContext) iSetTheQuantityOfProductTo(id, quantity int) error {
	c.err = c.ledger.SetQuantity(uint(id), quantity)
	return nil
}

func (c *pricingFeatureContext) iRemoveProduct(id int) error {
	c.ledger.RemoveItem(uint(id))
	return nil
}

func expectMoney(field string, got models.Money, want int) error {
	if got != models.NewMoney(int64(want)) {
		return fmt.Errorf("expected %s %d, got %d", field, want, got)
	}
	return nil
}

func (c *pricingFeatureContext) theSubtotalIs(want int) error {
	return expectMoney("subtotal", c.totals.Subtotal, want)
}

func (c *pricingFeatureContext) theDiscountIs(want int) error {
	return expectMoney("discount", c.totals.Discount, want)
}

func (c *pricingFeatureContext) theDeliveryChargeIs(want int) error {
	return expectMoney("delivery charge", c.totals.DeliveryCharge, want)
}

func (c *pricingFeatureContext) theTaxIs(want int) error {
	return expectMoney("tax", c.totals.Tax, want)
}

func (c *pricingFeatureContext) theGrandTotalIs(want int) error {
	return expectMoney("grand total", c.totals.GrandTotal, want)
}

func (c *pricingFeatureContext) theCouponIsApplied() error {
	if !c.totals.CouponApplied {
		return errors.New("expected coupon to be applied")
	}
	return nil
}

func (c *pricingFeatureContext) theCouponIsNotApplied() error {
	if c.totals.CouponApplied {
		return fmt.Errorf("expected no coupon, got %q", c.totals.CouponCode)
	}
	return nil
}

func (c *pricingFeatureContext) theCartHasLineItems(want int) error {
	if got := c.ledger.Len(); got != want {
		return fmt.Errorf("expected %d line items, got %d", want, got)
	}
	return nil
}

func (c *pricingFeatureContext) productHasQuantity(id, want int) error {
	item, ok := c.ledger.Item(uint(id))
	if !ok {
		return fmt.Errorf("product %d not in cart", id)
	}
	if item.Quantity != want {
		return fmt.Errorf("expected quantity %d, got %d", want, item.Quantity)
	}
	return nil
}

func (c *pricingFeatureContext) theCartSubtotalIs(want int) error {
	return expectMoney("cart subtotal", c.ledger.Subtotal(), want)
}

func (c *pricingFeatureContext) theLedgerRejectsTheQuantity() error {
	if !errors.Is(c.err, ErrInvalidQuantity) {
		return fmt.Errorf("expected ErrInvalidQuantity, got %v", c.err)
	}
	return nil
}

func (c *pricingFeatureContext) thereIsNoError() error {
	return c.err
}

func InitializePricingScenario(ctx *godog.ScenarioContext) {
	tc := &pricingFeatureContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^product (\d+) priced at (\d+) is added (\d+) times$`, tc.productPricedAtIsAddedTimes)

	ctx.Step(`^I price the cart without a coupon$`, tc.iPriceTheCartWithoutACoupon)
	ctx.Step(`^I price the cart with coupon "([^"]*)"$`, tc.iPriceTheCartWithCoupon)
	ctx.Step(`^I set the quantity of product (\d+) to (-?\d+)$`, tc.iSetTheQuantityOfProductTo)
	ctx.Step(`^I remove product (\d+)$`, tc.iRemoveProduct)

	ctx.Step(`^the subtotal is (\d+)$`, tc.theSubtotalIs)
	ctx.Step(`^the discount is (\d+)$`, tc.theDiscountIs)
	ctx.Step(`^the delivery charge is (\d+)$`, tc.theDeliveryChargeIs)
	ctx.Step(`^the tax is (\d+)$`, tc.theTaxIs)
	ctx.Step(`^the grand total is (\d+)$`, tc.theGrandTotalIs)
	ctx.Step(`^the coupon is applied$`, tc.theCouponIsApplied)
	ctx.Step(`^the coupon is not applied$`, tc.theCouponIsNotApplied)
	ctx.Step(`^the cart has (\d+) line items$`, tc.theCartHasLineItems)
	ctx.Step(`^product (\d+) has quantity (\d+)$`, tc.productHasQuantity)
	ctx.Step(`^the cart subtotal is (\d+)$`, tc.theCartSubtotalIs)
	ctx.Step(`^the ledger rejects the quantity$`, tc.theLedgerRejectsTheQuantity)
	ctx.Step(`^there is no error$`, tc.thereIsNoError)
}

func TestPricingFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializePricingScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/pricing.feature"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
