package service

import (
	"sync"
	"time"

	"github.com/storefront-next/internal/worker"
)

const defaultCartBumpDuration = 300 * time.Millisecond

// CartBadgeState 角标快照
type CartBadgeState struct {
	Count   int  `json:"count"`
	Bumping bool `json:"bumping"`
}

// CartBadge 购物车角标，件数增加时短暂进入跳动状态
type CartBadge struct {
	mu          sync.Mutex
	count       int
	bumping     bool
	duration    time.Duration
	cancelBump  func()
	unsubscribe func()
}

// NewCartBadge 创建角标并订阅账本件数变化
func NewCartBadge(ledger *Ledger, duration time.Duration) *CartBadge {
	if duration <= 0 {
		duration = defaultCartBumpDuration
	}
	b := &CartBadge{duration: duration}
	if ledger != nil {
		b.count = ledger.Count()
		b.unsubscribe = ledger.OnCountChanged(b.onCountChanged)
	}
	return b
}

// State 当前角标状态
func (b *CartBadge) State() CartBadgeState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return CartBadgeState{Count: b.count, Bumping: b.bumping}
}

// Stop 取消订阅并停止跳动计时
func (b *CartBadge) Stop() {
	if b == nil {
		return
	}
	b.mu.Lock()
	cancel := b.cancelBump
	unsubscribe := b.unsubscribe
	b.cancelBump = nil
	b.unsubscribe = nil
	b.bumping = false
	b.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (b *CartBadge) onCountChanged(oldCount, newCount int) {
	b.mu.Lock()
	b.count = newCount
	if newCount <= oldCount {
		b.mu.Unlock()
		return
	}
	previous := b.cancelBump
	b.cancelBump = nil
	b.mu.Unlock()

	if previous != nil {
		previous()
	}

	b.mu.Lock()
	b.bumping = true
	b.cancelBump = worker.After(b.duration, b.endBump)
	b.mu.Unlock()
}

func (b *CartBadge) endBump() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bumping = false
	b.cancelBump = nil
}
