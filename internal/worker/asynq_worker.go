package worker

import (
	"context"
	"time"

	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/queue"

	"github.com/hibiken/asynq"
)

// OrderStatsRecorder 下单统计写入
type OrderStatsRecorder func(ctx context.Context, day time.Time, units int, revenue int64) error

// Consumer 异步任务消费者
type Consumer struct {
	RecordOrderStats OrderStatsRecorder
}

// NewConsumer 创建消费者
func NewConsumer(recorder OrderStatsRecorder) *Consumer {
	return &Consumer{
		RecordOrderStats: recorder,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
}

func (c *Consumer) handleOrderPlaced(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderPlacedPayload(task)
	if err != nil {
		logger.Warnw("worker_order_placed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderNo == "" {
		logger.Debugw("worker_order_placed_skip_invalid_payload")
		return nil
	}

	logger.Infow("worker_order_placed",
		"order_no", payload.OrderNo,
		"session_id", payload.SessionID,
		"payment_method", payload.PaymentMethod,
		"units", payload.Units(),
		"grand_total", payload.GrandTotal,
		"coupon_code", payload.CouponCode,
	)

	if c.RecordOrderStats == nil {
		return nil
	}
	day := payload.PlacedAt
	if day.IsZero() {
		day = time.Now()
	}
	if err := c.RecordOrderStats(ctx, day, payload.Units(), payload.GrandTotal); err != nil {
		logger.Warnw("worker_order_placed_stats_failed", "order_no", payload.OrderNo, "error", err)
		return err
	}
	return nil
}
