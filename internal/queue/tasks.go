package queue

import (
	"encoding/json"
	"time"

	"github.com/storefront-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlaced 下单完成通知任务
	TaskOrderPlaced = constants.TaskOrderPlaced
)

// OrderPlacedItem 下单商品快照
type OrderPlacedItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Variant   string `json:"variant,omitempty"`
}

// OrderPlacedPayload 下单完成任务载荷
type OrderPlacedPayload struct {
	OrderNo        string            `json:"order_no"`
	SessionID      string            `json:"session_id"`
	PaymentMethod  string            `json:"payment_method"`
	Items          []OrderPlacedItem `json:"items"`
	Subtotal       int64             `json:"subtotal"`
	Discount       int64             `json:"discount"`
	DeliveryCharge int64             `json:"delivery_charge"`
	Tax            int64             `json:"tax"`
	GrandTotal     int64             `json:"grand_total"`
	CouponCode     string            `json:"coupon_code,omitempty"`
	PlacedAt       time.Time         `json:"placed_at"`
}

// Units 商品总件数
func (p OrderPlacedPayload) Units() int {
	total := 0
	for _, item := range p.Items {
		total += item.Quantity
	}
	return total
}

// NewOrderPlacedTask 创建下单完成任务
func NewOrderPlacedTask(payload OrderPlacedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlaced, body), nil
}

// ParseOrderPlacedPayload 解析下单完成任务载荷
func ParseOrderPlacedPayload(task *asynq.Task) (OrderPlacedPayload, error) {
	var payload OrderPlacedPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
