package service

import (
	"sync"
	"time"

	"github.com/storefront-next/internal/worker"
)

const defaultSearchHintInterval = 3 * time.Second

// DefaultSearchHints 搜索框轮换提示语
var DefaultSearchHints = []string{
	"Search for mobiles",
	"Search for laptops",
	"Search for fashion",
	"Search for electronics",
	"Search for home essentials",
	"Search for watches",
	"Search for groceries",
}

// SearchHintState 提示语快照
type SearchHintState struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Paused bool   `json:"paused"`
}

// SearchHint 搜索框提示语轮换
type SearchHint struct {
	mu     sync.Mutex
	hints  []string
	index  int
	paused bool
	ticker *worker.IntervalTask
}

// NewSearchHint 创建提示语轮换
func NewSearchHint(hints []string, interval time.Duration) *SearchHint {
	if len(hints) == 0 {
		hints = DefaultSearchHints
	}
	if interval <= 0 {
		interval = defaultSearchHintInterval
	}
	h := &SearchHint{hints: append([]string(nil), hints...)}
	h.ticker = worker.StartInterval(interval, h.rotate)
	return h
}

// State 当前提示语
func (h *SearchHint) State() SearchHintState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return SearchHintState{Index: h.index, Text: h.hints[h.index], Paused: h.paused}
}

// Pause 聚焦或输入时暂停轮换
func (h *SearchHint) Pause() SearchHintState {
	h.mu.Lock()
	h.paused = true
	h.mu.Unlock()
	h.ticker.Suspend()
	return h.State()
}

// Resume 失焦且输入为空时恢复轮换
func (h *SearchHint) Resume() SearchHintState {
	h.mu.Lock()
	h.paused = false
	h.mu.Unlock()
	h.ticker.Resume()
	return h.State()
}

// Stop 停止轮换
func (h *SearchHint) Stop() {
	if h == nil || h.ticker == nil {
		return
	}
	h.ticker.Stop()
}

func (h *SearchHint) rotate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.paused {
		return
	}
	h.index = (h.index + 1) % len(h.hints)
}
