package cache

import (
	"context"
	"strconv"
	"time"
)

const orderStatsTTL = 30 * 24 * time.Hour

// OrderStats 单日下单统计
type OrderStats struct {
	Orders  int64 `json:"orders"`
	Units   int64 `json:"units"`
	Revenue int64 `json:"revenue"`
}

func orderStatsKey(day time.Time) string {
	return "stats:orders:" + day.Format("20060102")
}

// IncrOrderStats 累加单日下单统计
func IncrOrderStats(ctx context.Context, day time.Time, units int, revenue int64) error {
	if !Enabled() {
		return nil
	}
	key := buildKey(orderStatsKey(day))
	pipe := redisClient.TxPipeline()
	pipe.HIncrBy(ctx, key, "orders", 1)
	pipe.HIncrBy(ctx, key, "units", int64(units))
	pipe.HIncrBy(ctx, key, "revenue", revenue)
	pipe.Expire(ctx, key, orderStatsTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// GetOrderStats 读取单日下单统计
func GetOrderStats(ctx context.Context, day time.Time) (OrderStats, error) {
	var stats OrderStats
	if !Enabled() {
		return stats, nil
	}
	values, err := redisClient.HGetAll(ctx, buildKey(orderStatsKey(day))).Result()
	if err != nil {
		return stats, err
	}
	stats.Orders, _ = strconv.ParseInt(values["orders"], 10, 64)
	stats.Units, _ = strconv.ParseInt(values["units"], 10, 64)
	stats.Revenue, _ = strconv.ParseInt(values["revenue"], 10, 64)
	return stats, nil
}
