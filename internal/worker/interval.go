package worker

import (
	"sync"
	"time"
)

// IntervalTask 周期任务，Stop 返回后保证不会再执行回调
type IntervalTask struct {
	interval time.Duration
	fn       func()

	mu          sync.Mutex
	pausedUntil time.Time
	suspended   bool

	resetCh  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// StartInterval 启动周期任务，回调内不得调用自身的 Stop
func StartInterval(interval time.Duration, fn func()) *IntervalTask {
	if interval <= 0 {
		interval = time.Second
	}
	t := &IntervalTask{
		interval: interval,
		fn:       fn,
		resetCh:  make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go t.run()
	return t
}

// Interval 周期
func (t *IntervalTask) Interval() time.Duration {
	return t.interval
}

// Pause 暂停 d，恢复后重新计时一个完整周期
func (t *IntervalTask) Pause(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	until := time.Now().Add(d)
	if until.After(t.pausedUntil) {
		t.pausedUntil = until
	}
	t.mu.Unlock()
	t.signalReset()
}

// Suspend 无限期暂停，直到 Resume
func (t *IntervalTask) Suspend() {
	t.mu.Lock()
	t.suspended = true
	t.mu.Unlock()
}

// Resume 解除暂停并重新计时
func (t *IntervalTask) Resume() {
	t.mu.Lock()
	t.suspended = false
	t.pausedUntil = time.Time{}
	t.mu.Unlock()
	t.signalReset()
}

// Paused 当前是否处于暂停状态
func (t *IntervalTask) Paused() bool {
	return t.pauseRemaining() > 0
}

// Stop 停止任务，可重复调用，阻塞至后台协程退出
func (t *IntervalTask) Stop() {
	if t == nil {
		return
	}
	t.stopOnce.Do(func() {
		close(t.stopCh)
	})
	<-t.doneCh
}

func (t *IntervalTask) signalReset() {
	select {
	case t.resetCh <- struct{}{}:
	default:
	}
}

func (t *IntervalTask) pauseRemaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.suspended {
		return t.interval
	}
	return time.Until(t.pausedUntil)
}

func (t *IntervalTask) run() {
	defer close(t.doneCh)
	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for {
		select {
		case <-t.stopCh:
			return
		case <-t.resetCh:
			timer.Reset(t.nextDelay())
		case <-timer.C:
			if remaining := t.pauseRemaining(); remaining > 0 {
				timer.Reset(remaining + t.interval)
				continue
			}
			select {
			case <-t.stopCh:
				return
			default:
			}
			if t.fn != nil {
				t.fn()
			}
			timer.Reset(t.interval)
		}
	}
}

func (t *IntervalTask) nextDelay() time.Duration {
	if remaining := t.pauseRemaining(); remaining > 0 {
		return remaining + t.interval
	}
	return t.interval
}

// After 延迟执行一次，返回的取消函数返回后保证回调不会再执行
func After(d time.Duration, fn func()) (cancel func()) {
	var (
		mu       sync.Mutex
		canceled bool
	)
	timer := time.AfterFunc(d, func() {
		mu.Lock()
		defer mu.Unlock()
		if canceled || fn == nil {
			return
		}
		fn()
	})
	return func() {
		timer.Stop()
		mu.Lock()
		canceled = true
		mu.Unlock()
	}
}
