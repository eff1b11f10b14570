package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/queue"

	"github.com/google/uuid"
)

// OrderReceipt 下单回执
type OrderReceipt struct {
	OrderNo       string        `json:"order_no"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Items         []LineItem    `json:"items"`
	Totals        OrderTotals   `json:"totals"`
	PlacedAt      time.Time     `json:"placed_at"`
}

// OrderPlacedPublisher 下单事件投递
type OrderPlacedPublisher interface {
	EnqueueOrderPlaced(payload queue.OrderPlacedPayload) error
}

// OrderService 下单服务
type OrderService struct {
	pricing        PricingSource
	paymentMethods *PaymentMethodService
	publisher      OrderPlacedPublisher
	now            func() time.Time
}

// NewOrderService 创建下单服务
func NewOrderService(pricing PricingSource, paymentMethods *PaymentMethodService, publisher OrderPlacedPublisher) *OrderService {
	return &OrderService{
		pricing:        pricing,
		paymentMethods: paymentMethods,
		publisher:      publisher,
		now:            time.Now,
	}
}

// SelectPaymentMethod 选择支付方式
func (s *OrderService) SelectPaymentMethod(session *Session, methodID string) (PaymentMethod, error) {
	method, err := s.paymentMethods.Get(methodID)
	if err != nil {
		return PaymentMethod{}, err
	}
	err = session.Do(func() error {
		session.SetPaymentMethod(method.ID)
		return nil
	})
	return method, err
}

// PlaceOrder 下单：校验后生成回执，并清空购物车、优惠码与支付方式
func (s *OrderService) PlaceOrder(session *Session, paymentMethodID string) (*OrderReceipt, error) {
	calculator := s.pricing.Calculator()
	var receipt *OrderReceipt
	err := session.Do(func() error {
		ledger := session.Ledger()
		if ledger.IsEmpty() {
			return ErrCartEmpty
		}
		methodID := strings.TrimSpace(paymentMethodID)
		if methodID == "" {
			methodID = session.PaymentMethod()
		}
		method, err := s.paymentMethods.Get(methodID)
		if err != nil {
			return err
		}

		items := ledger.Items()
		receipt = &OrderReceipt{
			OrderNo:       generateOrderNo(s.now()),
			PaymentMethod: method,
			Items:         items,
			Totals:        calculator.Calculate(items, session.CouponCode()),
			PlacedAt:      s.now(),
		}

		ledger.Clear()
		session.SetCouponCode("")
		session.SetPaymentMethod("")
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_placed",
		"session_id", session.ID(),
		"order_no", receipt.OrderNo,
		"payment_method", receipt.PaymentMethod.ID,
		"grand_total", receipt.Totals.GrandTotal,
	)
	s.publish(session.ID(), receipt)
	return receipt, nil
}

func (s *OrderService) publish(sessionID string, receipt *OrderReceipt) {
	if s.publisher == nil || receipt == nil {
		return
	}
	if err := s.publisher.EnqueueOrderPlaced(buildOrderPlacedPayload(sessionID, receipt)); err != nil {
		logger.Warnw("order_placed_enqueue_failed", "order_no", receipt.OrderNo, "error", err)
	}
}

func buildOrderPlacedPayload(sessionID string, receipt *OrderReceipt) queue.OrderPlacedPayload {
	items := make([]queue.OrderPlacedItem, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, queue.OrderPlacedItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.Int64(),
			Quantity:  item.Quantity,
			Variant:   item.Variant,
		})
	}
	return queue.OrderPlacedPayload{
		OrderNo:        receipt.OrderNo,
		SessionID:      sessionID,
		PaymentMethod:  receipt.PaymentMethod.ID,
		Items:          items,
		Subtotal:       receipt.Totals.Subtotal.Int64(),
		Discount:       receipt.Totals.Discount.Int64(),
		DeliveryCharge: receipt.Totals.DeliveryCharge.Int64(),
		Tax:            receipt.Totals.Tax.Int64(),
		GrandTotal:     receipt.Totals.GrandTotal.Int64(),
		CouponCode:     receipt.Totals.CouponCode,
		PlacedAt:       receipt.PlacedAt,
	}
}

// generateOrderNo 订单号：SF + 时间戳 + 随机后缀
func generateOrderNo(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("SF%s%s", now.Format("20060102150405"), suffix)
}
